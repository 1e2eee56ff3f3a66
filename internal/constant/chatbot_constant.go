package constant

import "anilab-chat-be/pkg/taxonomy"

// Log modules
const (
	LogModuleChat    = "chat"
	LogModuleB2B     = "b2b"
	LogModuleLead    = "lead"
	LogModuleCatalog = "catalog"
	LogModuleLLM     = "llm"
	LogModuleSession = "session"
	LogModuleServer  = "server"
)

const (
	ChatGreeting = "Dobrý deň! 👋 Som ANiLab asistent. Poradím vám s výberom kávy, funkčných húb aj doplnkov. " +
		"Napíšte mi, čo hľadáte alebo čo chcete podporiť (spánok, energiu, sústredenie, imunitu...)."

	ChatClarifyingQuestion = "Aby som trafil presnejšie: na čo to má byť (energia, spánok, sústredenie, stres) " +
		"a preferujete zrnkovú, mletú, instantnú alebo kávu bez kofeínu?"

	ChatClosing = "Ak chcete, poradím aj s dávkovaním alebo vám nájdem ďalšie tipy."

	ChatIntroDefault      = "Tu je pár tipov z našej ponuky:"
	ChatIntroProduct      = "Na základe toho, čo hľadáte, odporúčam:"
	ChatIntroNoProducts   = "Momentálne vám z katalógu neviem nič konkrétne ponúknuť."
	ChatOrderHelpFallback = "S objednávkou, dopravou, platbou aj vrátením vám radi pomôžeme. Všetky informácie nájdete tu: %s"

	// ChatApology is sent whenever a request fails internally.
	ChatApology = "Prepáčte, niečo sa pokazilo. Skúste to prosím o chvíľu znova."

	ChatErrorMissingMessage = "Missing message"
)

var goalIntros = map[taxonomy.Goal]string{
	taxonomy.GoalSleep:        "Na lepší spánok a večerné upokojenie odporúčam:",
	taxonomy.GoalStress:       "Na zvládanie stresu a pokoj počas dňa odporúčam:",
	taxonomy.GoalEnergy:       "Na energiu bez zbytočných výkyvov odporúčam:",
	taxonomy.GoalFocus:        "Na sústredenie a jasnú hlavu odporúčam:",
	taxonomy.GoalImmunity:     "Na podporu imunity odporúčam:",
	taxonomy.GoalKeto:         "Ak držíte keto alebo low carb, skúste:",
	taxonomy.GoalProtein:      "Ak chcete doplniť bielkoviny, skúste:",
	taxonomy.GoalTestosterone: "Na podporu vitality odporúčam:",
	taxonomy.GoalCBD:          "Z CBD a konopných produktov odporúčam:",
}

var formatIntros = map[taxonomy.Format]string{
	taxonomy.FormatWholeBean:    "Zo zrnkových káv odporúčam:",
	taxonomy.FormatGround:       "Z mletých káv odporúčam:",
	taxonomy.FormatInstant:      "Z instantných variantov odporúčam:",
	taxonomy.FormatCaffeineFree: "Bez kofeínu odporúčam:",
}

// GoalIntro returns the intro line for a goal, or "" when there is none.
func GoalIntro(g taxonomy.Goal) string {
	return goalIntros[g]
}

func FormatIntro(f taxonomy.Format) string {
	return formatIntros[f]
}
