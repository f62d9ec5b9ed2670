package i18n

// tables maps language code -> key -> display text. English is complete;
// the other languages fall back to English for any key they omit.
var tables = map[string]map[string]string{
	"en": {
		"onboarding.language.title":       "Choose your language",
		"onboarding.language.description": "You can change this later in Settings.",
		"onboarding.name.title":           "What should we call you?",
		"onboarding.name.placeholder":     "Your name",
		"onboarding.name.required":        "Please enter a name to continue",
		"onboarding.currency.title":       "Pick your main currency",
		"onboarding.currency.description": "Used for budgets, balances, and insights.",
		"onboarding.currency.preview":     "Amounts will look like %s",
		"onboarding.progress":             "Step %d of %d",
		"onboarding.next":                 "Next",
		"onboarding.back":                 "Back",
		"onboarding.submit":               "Finish",
		"onboarding.done.title":           "You're all set, %s!",
		"onboarding.done.body":            "Your assistant is ready. Ask anything about your money.",
		"chat.conversations":              "Conversations (%d)",

		"question.primary_goal.title":                   "What brings you here?",
		"question.primary_goal.option.save_more":        "Save more each month",
		"question.primary_goal.option.pay_off_debt":     "Pay off debt",
		"question.primary_goal.option.invest_better":    "Invest smarter",
		"question.primary_goal.option.track_spending":   "Understand my spending",
		"question.experience_level.title":               "How comfortable are you with personal finance?",
		"question.experience_level.option.beginner":     "Just getting started",
		"question.experience_level.option.intermediate": "I know the basics",
		"question.experience_level.option.advanced":     "Very comfortable",
		"question.spending_focus.title":                 "Where does most of your money go?",
		"question.spending_focus.option.essentials":     "Rent, bills, groceries",
		"question.spending_focus.option.lifestyle":      "Eating out and shopping",
		"question.spending_focus.option.subscriptions":  "Subscriptions and services",
		"question.spending_focus.option.travel":         "Travel and experiences",
		"question.referral_source.title":                "How did you hear about us?",
		"question.referral_source.option.app_store":     "App store",
		"question.referral_source.option.friend":        "A friend",
		"question.referral_source.option.social_media":  "Social media",
		"question.referral_source.option.web_search":    "Web search",
	},
	"es": {
		"onboarding.language.title":       "Elige tu idioma",
		"onboarding.language.description": "Puedes cambiarlo más tarde en Ajustes.",
		"onboarding.name.title":           "¿Cómo quieres que te llamemos?",
		"onboarding.name.placeholder":     "Tu nombre",
		"onboarding.name.required":        "Introduce un nombre para continuar",
		"onboarding.currency.title":       "Elige tu moneda principal",
		"onboarding.currency.description": "Se usa para presupuestos, saldos y análisis.",
		"onboarding.currency.preview":     "Los importes se verán así: %s",
		"onboarding.progress":             "Paso %d de %d",
		"onboarding.next":                 "Siguiente",
		"onboarding.back":                 "Atrás",
		"onboarding.submit":               "Terminar",
		"onboarding.done.title":           "¡Todo listo, %s!",
		"onboarding.done.body":            "Tu asistente está preparado. Pregunta lo que quieras sobre tu dinero.",
		"chat.conversations":              "Conversaciones (%d)",

		"question.primary_goal.title":                   "¿Qué te trae por aquí?",
		"question.primary_goal.option.save_more":        "Ahorrar más cada mes",
		"question.primary_goal.option.pay_off_debt":     "Pagar deudas",
		"question.primary_goal.option.invest_better":    "Invertir mejor",
		"question.primary_goal.option.track_spending":   "Entender mis gastos",
		"question.experience_level.title":               "¿Qué tan cómodo te sientes con las finanzas personales?",
		"question.experience_level.option.beginner":     "Estoy empezando",
		"question.experience_level.option.intermediate": "Conozco lo básico",
		"question.experience_level.option.advanced":     "Muy cómodo",
		"question.spending_focus.title":                 "¿A dónde va la mayor parte de tu dinero?",
		"question.spending_focus.option.essentials":     "Alquiler, facturas, compra",
		"question.spending_focus.option.lifestyle":      "Salir a comer y compras",
		"question.spending_focus.option.subscriptions":  "Suscripciones y servicios",
		"question.spending_focus.option.travel":         "Viajes y experiencias",
		"question.referral_source.title":                "¿Cómo nos conociste?",
		"question.referral_source.option.app_store":     "Tienda de aplicaciones",
		"question.referral_source.option.friend":        "Un amigo",
		"question.referral_source.option.social_media":  "Redes sociales",
		"question.referral_source.option.web_search":    "Búsqueda web",
	},
	"de": {
		"onboarding.language.title":       "Wähle deine Sprache",
		"onboarding.language.description": "Du kannst das später in den Einstellungen ändern.",
		"onboarding.name.title":           "Wie sollen wir dich nennen?",
		"onboarding.name.placeholder":     "Dein Name",
		"onboarding.name.required":        "Bitte gib einen Namen ein, um fortzufahren",
		"onboarding.currency.title":       "Wähle deine Hauptwährung",
		"onboarding.currency.description": "Wird für Budgets, Salden und Auswertungen verwendet.",
		"onboarding.currency.preview":     "Beträge sehen so aus: %s",
		"onboarding.progress":             "Schritt %d von %d",
		"onboarding.next":                 "Weiter",
		"onboarding.back":                 "Zurück",
		"onboarding.submit":               "Fertig",
		"onboarding.done.title":           "Alles bereit, %s!",
		"onboarding.done.body":            "Dein Assistent ist startklar. Frag alles rund um dein Geld.",
		"chat.conversations":              "Unterhaltungen (%d)",

		"question.primary_goal.title":                   "Was führt dich her?",
		"question.primary_goal.option.save_more":        "Jeden Monat mehr sparen",
		"question.primary_goal.option.pay_off_debt":     "Schulden abbauen",
		"question.primary_goal.option.invest_better":    "Klüger investieren",
		"question.primary_goal.option.track_spending":   "Meine Ausgaben verstehen",
		"question.experience_level.title":               "Wie vertraut bist du mit persönlichen Finanzen?",
		"question.experience_level.option.beginner":     "Ich fange gerade an",
		"question.experience_level.option.intermediate": "Ich kenne die Grundlagen",
		"question.experience_level.option.advanced":     "Sehr vertraut",
		"question.spending_focus.title":                 "Wofür geht das meiste Geld drauf?",
		"question.spending_focus.option.essentials":     "Miete, Rechnungen, Lebensmittel",
		"question.spending_focus.option.lifestyle":      "Essen gehen und Shopping",
		"question.spending_focus.option.subscriptions":  "Abos und Dienste",
		"question.spending_focus.option.travel":         "Reisen und Erlebnisse",
		"question.referral_source.title":                "Wie hast du von uns erfahren?",
		"question.referral_source.option.app_store":     "App Store",
		"question.referral_source.option.friend":        "Von Freunden",
		"question.referral_source.option.social_media":  "Soziale Medien",
		"question.referral_source.option.web_search":    "Websuche",
	},
	"fr": {
		"onboarding.language.title":       "Choisissez votre langue",
		"onboarding.language.description": "Vous pourrez la changer plus tard dans les réglages.",
		"onboarding.name.title":           "Comment devons-nous vous appeler ?",
		"onboarding.name.placeholder":     "Votre nom",
		"onboarding.name.required":        "Saisissez un nom pour continuer",
		"onboarding.currency.title":       "Choisissez votre devise principale",
		"onboarding.currency.description": "Utilisée pour les budgets, soldes et analyses.",
		"onboarding.currency.preview":     "Les montants ressembleront à %s",
		"onboarding.progress":             "Étape %d sur %d",
		"onboarding.next":                 "Suivant",
		"onboarding.back":                 "Retour",
		"onboarding.submit":               "Terminer",
		"onboarding.done.title":           "Tout est prêt, %s !",
		"onboarding.done.body":            "Votre assistant est prêt. Posez vos questions d'argent.",
		"chat.conversations":              "Conversations (%d)",

		"question.primary_goal.title":                   "Qu'est-ce qui vous amène ?",
		"question.primary_goal.option.save_more":        "Épargner plus chaque mois",
		"question.primary_goal.option.pay_off_debt":     "Rembourser mes dettes",
		"question.primary_goal.option.invest_better":    "Mieux investir",
		"question.primary_goal.option.track_spending":   "Comprendre mes dépenses",
		"question.experience_level.title":               "Êtes-vous à l'aise avec les finances personnelles ?",
		"question.experience_level.option.beginner":     "Je débute",
		"question.experience_level.option.intermediate": "Je connais les bases",
		"question.experience_level.option.advanced":     "Très à l'aise",
		"question.spending_focus.title":                 "Où part la majorité de votre argent ?",
		"question.spending_focus.option.essentials":     "Loyer, factures, courses",
		"question.spending_focus.option.lifestyle":      "Restaurants et shopping",
		"question.spending_focus.option.subscriptions":  "Abonnements et services",
		"question.spending_focus.option.travel":         "Voyages et expériences",
		"question.referral_source.title":                "Comment nous avez-vous connus ?",
		"question.referral_source.option.app_store":     "App store",
		"question.referral_source.option.friend":        "Un ami",
		"question.referral_source.option.social_media":  "Réseaux sociaux",
		"question.referral_source.option.web_search":    "Recherche web",
	},
}
