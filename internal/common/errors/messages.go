package errors

// userMessages holds the generic, non-technical sentences shown to end users
// per category and locale. Internal details never reach these strings.
var userMessages = map[string]map[string]string{
	"en": {
		CategoryValidation:   "Some of the information provided is missing or not valid. Please check it and try again.",
		CategoryNotFound:     "We could not find what you were looking for.",
		CategoryPersistence:  "Sorry, we could not save your answers. Please try submitting again.",
		CategorySearch:       "The service directory is unavailable right now. Please try again later.",
		CategoryNotification: "We could not send your message right now. Please try again later.",
		CategoryOther:        "Something went wrong. Please try again later.",
	},
	"es": {
		CategoryValidation:   "Falta información o no es válida. Revísela e inténtelo de nuevo.",
		CategoryNotFound:     "No hemos encontrado lo que busca.",
		CategoryPersistence:  "Lo sentimos, no hemos podido guardar sus respuestas. Inténtelo de nuevo.",
		CategorySearch:       "El directorio de servicios no está disponible. Inténtelo más tarde.",
		CategoryNotification: "No hemos podido enviar su mensaje. Inténtelo más tarde.",
		CategoryOther:        "Algo ha salido mal. Inténtelo más tarde.",
	},
	"fr": {
		CategoryValidation:   "Certaines informations sont manquantes ou invalides. Veuillez vérifier et réessayer.",
		CategoryNotFound:     "Nous n'avons pas trouvé ce que vous cherchez.",
		CategoryPersistence:  "Désolé, nous n'avons pas pu enregistrer vos réponses. Veuillez réessayer.",
		CategorySearch:       "L'annuaire des services est indisponible. Veuillez réessayer plus tard.",
		CategoryNotification: "Nous n'avons pas pu envoyer votre message. Veuillez réessayer plus tard.",
		CategoryOther:        "Une erreur est survenue. Veuillez réessayer plus tard.",
	},
	"de": {
		CategoryValidation:   "Einige Angaben fehlen oder sind ungültig. Bitte prüfen Sie sie und versuchen Sie es erneut.",
		CategoryNotFound:     "Wir konnten das Gesuchte nicht finden.",
		CategoryPersistence:  "Leider konnten wir Ihre Antworten nicht speichern. Bitte senden Sie sie erneut.",
		CategorySearch:       "Das Dienstverzeichnis ist derzeit nicht verfügbar. Bitte versuchen Sie es später erneut.",
		CategoryNotification: "Ihre Nachricht konnte nicht gesendet werden. Bitte versuchen Sie es später erneut.",
		CategoryOther:        "Etwas ist schiefgelaufen. Bitte versuchen Sie es später erneut.",
	},
	"zh": {
		CategoryValidation:   "部分信息缺失或无效，请检查后重试。",
		CategoryNotFound:     "未找到您要查找的内容。",
		CategoryPersistence:  "抱歉，无法保存您的回答，请重新提交。",
		CategorySearch:       "服务目录暂时不可用，请稍后再试。",
		CategoryNotification: "暂时无法发送您的消息，请稍后再试。",
		CategoryOther:        "出现问题，请稍后再试。",
	},
}

// UserMessage returns the end-user sentence for code in locale, falling back
// to English.
func UserMessage(code ErrorCode, locale string) string {
	category := GetErrorCategory(code)
	if m, ok := userMessages[locale]; ok {
		if v, ok := m[category]; ok {
			return v
		}
	}
	return userMessages["en"][category]
}
