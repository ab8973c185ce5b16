package letters

// Placeholders recognised in template text. Every placeholder is replaced in
// a single pass; values are never re-scanned.
const (
	phDate                  = "{date}"
	phClientName            = "{clientName}"
	phRecipientName         = "{recipientName}"
	phRecipientTitle        = "{recipientTitle}"
	phRecipientOrganization = "{recipientOrganization}"
	phRecipientAddress      = "{recipientAddress}"
	phSenderName            = "{senderName}"
	phSenderTitle           = "{senderTitle}"
	phSenderOrganization    = "{senderOrganization}"
	phSenderPhone           = "{senderPhone}"
	phSenderEmail           = "{senderEmail}"
	phChallenges            = "{challenges}"
	phStrengths             = "{strengths}"
	phGoals                 = "{goals}"
	phSubject               = "{subject}"
	phObject                = "{object}"
	phPossessive            = "{possessive}"
)

// Template is one bundled (language, letter type) letter.
type Template struct {
	Language   Language
	LetterType LetterType
	Title      string
	Body       string
}

type frame struct {
	header  string
	closing string
}

type content struct {
	title string
	body  string
}

var frames = map[Language]frame{
	English: {
		header: `{date}

{recipientName}
{recipientTitle}
{recipientOrganization}
{recipientAddress}

Dear {recipientName},

`,
		closing: `

Thank you for your time and consideration. Please do not hesitate to contact me if you need any further information.

Yours sincerely,

{senderName}
{senderTitle}
{senderOrganization}
Tel: {senderPhone}
Email: {senderEmail}
`,
	},
	Spanish: {
		header: `{date}

{recipientName}
{recipientTitle}
{recipientOrganization}
{recipientAddress}

Estimado/a {recipientName}:

`,
		closing: `

Le agradezco su tiempo y consideración. No dude en ponerse en contacto conmigo si necesita más información.

Atentamente,

{senderName}
{senderTitle}
{senderOrganization}
Tel.: {senderPhone}
Correo electrónico: {senderEmail}
`,
	},
	French: {
		header: `{date}

{recipientName}
{recipientTitle}
{recipientOrganization}
{recipientAddress}

Madame, Monsieur {recipientName},

`,
		closing: `

Je vous remercie de l'attention que vous porterez à cette lettre. N'hésitez pas à me contacter pour tout renseignement complémentaire.

Veuillez agréer l'expression de mes salutations distinguées.

{senderName}
{senderTitle}
{senderOrganization}
Tél. : {senderPhone}
Courriel : {senderEmail}
`,
	},
	German: {
		header: `{date}

{recipientName}
{recipientTitle}
{recipientOrganization}
{recipientAddress}

Sehr geehrte/r {recipientName},

`,
		closing: `

Vielen Dank für Ihre Zeit und Ihre Aufmerksamkeit. Für weitere Auskünfte stehe ich Ihnen gerne zur Verfügung.

Mit freundlichen Grüßen

{senderName}
{senderTitle}
{senderOrganization}
Tel.: {senderPhone}
E-Mail: {senderEmail}
`,
	},
	Chinese: {
		header: `{date}

{recipientName}
{recipientTitle}
{recipientOrganization}
{recipientAddress}

尊敬的{recipientName}：

`,
		closing: `

感谢您的时间与关注。如需更多信息，请随时与我联系。

此致
敬礼

{senderName}
{senderTitle}
{senderOrganization}
电话：{senderPhone}
电子邮件：{senderEmail}
`,
	},
}

var contents = map[Language]map[LetterType]content{
	English: {
		Housing: {
			title: "Letter of Support for Housing",
			body: `I am writing in support of {clientName}'s application for housing. I have been working with {object} and can confirm that {clientName} does not currently have a settled home.

{clientName} is facing the following challenges: {challenges}

I have seen that {subject} can draw on real strengths: {strengths}

Secure accommodation would allow {object} to work towards {possessive} goals: {goals}

I would be grateful if you could give {possessive} application your full and careful consideration.`,
		},
		Employment: {
			title: "Letter of Support for Employment",
			body: `I am writing to support {clientName} in {possessive} search for work. I have come to know {object} well through our service.

{clientName} has faced barriers to employment, including: {challenges}

I can recommend {object} with confidence. {clientName} brings the following strengths: {strengths}

With the right opportunity {subject} would be able to pursue {possessive} goals: {goals}

I believe {clientName} would be a committed and reliable member of your team.`,
		},
		Services: {
			title: "Letter of Referral for Support Services",
			body: `I am writing to refer {clientName} to your service. I have been supporting {object} and believe {subject} would benefit from the help you provide.

The main difficulties {clientName} is dealing with are: {challenges}

{clientName} has strengths that will help {object} engage with support: {strengths}

With your help {subject} hopes to achieve {possessive} goals: {goals}

Please let me know what information you need to assess this referral.`,
		},
		General: {
			title: "Letter of Support",
			body: `I am writing on behalf of {clientName}, whom I have been supporting through our service.

{clientName} is currently dealing with: {challenges}

I have seen {object} demonstrate the following strengths: {strengths}

With the right support {subject} can work towards {possessive} goals: {goals}

Any assistance you can offer {object} would be greatly appreciated.`,
		},
	},
	Spanish: {
		Housing: {
			title: "Carta de apoyo para vivienda",
			body: `Le escribo para apoyar la solicitud de vivienda de {clientName}. He trabajado con {object} y puedo confirmar que actualmente no tiene un hogar estable.

{clientName} se enfrenta a las siguientes dificultades: {challenges}

Durante nuestro trabajo, {subject} ha demostrado verdaderas fortalezas: {strengths}

Un alojamiento seguro le permitiría avanzar hacia {possessive}s objetivos: {goals}

Le agradecería que considerara {possessive} solicitud con la máxima atención.`,
		},
		Employment: {
			title: "Carta de apoyo para empleo",
			body: `Le escribo para apoyar a {clientName} en {possessive} búsqueda de empleo. He llegado a conocer bien a {clientName} a través de nuestro servicio.

{clientName} ha encontrado obstáculos para acceder al empleo, entre ellos: {challenges}

Puedo recomendar a {clientName} con confianza. Aporta las siguientes fortalezas: {strengths}

Con la oportunidad adecuada, {subject} podría alcanzar {possessive}s objetivos: {goals}

Estoy convencido/a de que {clientName} sería un miembro comprometido y fiable de su equipo.`,
		},
		Services: {
			title: "Carta de derivación a servicios de apoyo",
			body: `Le escribo para derivar a {clientName} a su servicio. He estado apoyando a {clientName} y creo que {subject} se beneficiaría de la ayuda que ustedes ofrecen.

Las principales dificultades de {clientName} son: {challenges}

{clientName} tiene fortalezas que le ayudarán a aprovechar el apoyo: {strengths}

Con su ayuda, {subject} espera alcanzar {possessive}s objetivos: {goals}

Por favor, indíqueme qué información necesita para valorar esta derivación.`,
		},
		General: {
			title: "Carta de apoyo",
			body: `Le escribo en nombre de {clientName}, a quien he estado apoyando a través de nuestro servicio.

Actualmente, {clientName} se enfrenta a: {challenges}

He visto en {object} las siguientes fortalezas: {strengths}

Hoy en día, {subject} está trabajando para alcanzar {possessive}s objetivos: {goals}

Le agradeceríamos mucho cualquier ayuda que pueda ofrecer a {clientName}.`,
		},
	},
	French: {
		Housing: {
			title: "Lettre de soutien pour un logement",
			body: `Je vous écris pour appuyer la demande de logement de {clientName}. J'accompagne {clientName} depuis un certain temps et je peux confirmer qu'{subject} n'a pas actuellement de logement stable.

{clientName} rencontre les difficultés suivantes : {challenges}

Au cours de notre travail, {subject} a fait preuve de réelles qualités : {strengths}

Un logement sûr permettrait à {clientName} de poursuivre {possessive} projet : {goals}

Je vous serais reconnaissant(e) d'examiner cette demande avec la plus grande attention.`,
		},
		Employment: {
			title: "Lettre de recommandation pour un emploi",
			body: `Je vous écris pour soutenir {clientName} dans {possessive} recherche d'emploi. J'ai appris à bien connaître {clientName} grâce à notre service et je travaille avec {object} régulièrement.

{clientName} a rencontré des obstacles à l'emploi, notamment : {challenges}

Je recommande {clientName} en toute confiance car {subject} possède les atouts suivants : {strengths}

Avec une opportunité adaptée, {subject} pourrait atteindre ses objectifs : {goals}

Je suis convaincu(e) que {clientName} serait un membre engagé et fiable de votre équipe.`,
		},
		Services: {
			title: "Lettre d'orientation vers des services d'accompagnement",
			body: `Je vous écris pour orienter {clientName} vers votre service. J'accompagne {clientName} et je pense qu'{subject} bénéficierait de l'aide que vous proposez.

Les principales difficultés de {clientName} sont : {challenges}

{clientName} dispose de qualités qui l'aideront à s'engager dans un accompagnement : {strengths}

Avec votre aide, {subject} espère atteindre ses objectifs : {goals}

Merci de m'indiquer les informations nécessaires pour étudier cette demande.`,
		},
		General: {
			title: "Lettre de soutien",
			body: `Je vous écris au nom de {clientName}, que j'accompagne dans le cadre de notre service.

{clientName} fait actuellement face à : {challenges}

J'ai pu constater chez {object} les qualités suivantes : {strengths}

Aujourd'hui, {subject} travaille à atteindre ses objectifs : {goals}

Toute aide que vous pourrez apporter à {clientName} sera grandement appréciée.`,
		},
	},
	German: {
		Housing: {
			title: "Unterstützungsschreiben für eine Wohnung",
			body: `Ich schreibe Ihnen, um den Wohnungsantrag von {clientName} zu unterstützen. Ich arbeite seit einiger Zeit mit {clientName} und kann bestätigen, dass {subject} derzeit keine feste Unterkunft hat.

{clientName} steht vor folgenden Herausforderungen: {challenges}

In unserer Zusammenarbeit hat {subject} echte Stärken gezeigt: {strengths}

Eine sichere Unterkunft würde es {clientName} ermöglichen, {possessive}e Ziele zu verfolgen: {goals}

Ich wäre Ihnen dankbar, wenn Sie den Antrag sorgfältig prüfen würden.`,
		},
		Employment: {
			title: "Empfehlungsschreiben für eine Beschäftigung",
			body: `Ich schreibe Ihnen, um {clientName} bei der Arbeitssuche zu unterstützen. Ich habe {clientName} durch unseren Dienst gut kennengelernt und kann {object} mit gutem Gewissen empfehlen.

{clientName} hatte mit Hindernissen auf dem Arbeitsmarkt zu kämpfen, darunter: {challenges}

{clientName} bringt folgende Stärken mit: {strengths}

Mit der richtigen Gelegenheit könnte {subject} {possessive}e Ziele erreichen: {goals}

Ich bin überzeugt, dass {clientName} ein engagiertes und zuverlässiges Mitglied Ihres Teams wäre.`,
		},
		Services: {
			title: "Überweisungsschreiben an einen Hilfsdienst",
			body: `Ich schreibe Ihnen, um {clientName} an Ihren Dienst zu verweisen. Ich begleite {clientName} und glaube, dass {subject} von Ihrer Unterstützung profitieren würde.

Die wichtigsten Schwierigkeiten von {clientName} sind: {challenges}

{clientName} hat Stärken, die bei der Annahme von Hilfe helfen werden: {strengths}

Mit Ihrer Hilfe möchte {subject} {possessive}e Ziele erreichen: {goals}

Bitte teilen Sie mir mit, welche Informationen Sie für die Prüfung benötigen.`,
		},
		General: {
			title: "Unterstützungsschreiben",
			body: `Ich schreibe Ihnen im Namen von {clientName}, den/die ich im Rahmen unseres Dienstes begleite.

{clientName} hat derzeit mit Folgendem zu tun: {challenges}

Ich habe bei {clientName} folgende Stärken erlebt: {strengths}

Derzeit arbeitet {subject} auf {possessive}e Ziele hin: {goals}

Jede Unterstützung, die Sie {clientName} anbieten können, wird sehr geschätzt.`,
		},
	},
	Chinese: {
		Housing: {
			title: "住房支持信",
			body: `我写此信以支持{clientName}的住房申请。我一直与{object}合作，可以确认{clientName}目前没有稳定的住所。

{clientName}目前面临以下困难：{challenges}

在我们的合作中，{subject}展现出了真正的优点：{strengths}

安全的住所将帮助{object}实现{possessive}目标：{goals}

恳请您认真考虑{possessive}申请。`,
		},
		Employment: {
			title: "就业推荐信",
			body: `我写此信以支持{clientName}求职。通过我们的服务，我对{object}有了深入的了解。

{clientName}在就业方面遇到过以下障碍：{challenges}

我可以放心地推荐{object}。{clientName}具备以下优点：{strengths}

如果有合适的机会，{subject}将能够实现{possessive}目标：{goals}

我相信{clientName}会成为贵团队中认真可靠的一员。`,
		},
		Services: {
			title: "支持服务转介信",
			body: `我写此信是为了将{clientName}转介至贵机构。我一直在为{object}提供支持，相信{subject}会从贵机构的帮助中受益。

{clientName}目前的主要困难是：{challenges}

{clientName}具备有助于接受支持的优点：{strengths}

在您的帮助下，{subject}希望实现{possessive}目标：{goals}

请告知评估此转介所需的信息。`,
		},
		General: {
			title: "支持信",
			body: `我谨代表{clientName}写此信，我一直通过我们的服务为{object}提供支持。

{clientName}目前正在面对：{challenges}

我看到{object}具备以下优点：{strengths}

{subject}正在努力实现{possessive}目标：{goals}

如您能为{clientName}提供任何帮助，我们将不胜感激。`,
		},
	},
}

// templates is built once from frames and contents and never written again.
var templates = buildTemplates()

func buildTemplates() map[Language]map[LetterType]Template {
	out := make(map[Language]map[LetterType]Template, len(Languages))
	for _, lang := range Languages {
		f := frames[lang]
		out[lang] = make(map[LetterType]Template, len(LetterTypes))
		for _, lt := range LetterTypes {
			c := contents[lang][lt]
			out[lang][lt] = Template{
				Language:   lang,
				LetterType: lt,
				Title:      c.title,
				Body:       f.header + c.body + f.closing,
			}
		}
	}
	return out
}

// Lookup returns the bundled template for an already-resolved pair.
func Lookup(lang Language, lt LetterType) (Template, bool) {
	byType, ok := templates[lang]
	if !ok {
		return Template{}, false
	}
	t, ok := byType[lt]
	return t, ok
}

// Catalogue lists every bundled template, languages then types in order.
func Catalogue() []Template {
	out := make([]Template, 0, len(Languages)*len(LetterTypes))
	for _, lang := range Languages {
		for _, lt := range LetterTypes {
			out = append(out, templates[lang][lt])
		}
	}
	return out
}
