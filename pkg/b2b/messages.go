package b2b

const (
	QuestionBusinessType = "Super, s firmami radi spolupracujeme. Ide vám o private label (vlastná značka), veľkoobchod / ďalší predaj, alebo distribúciu?"
	QuestionCountry      = "Do ktorej krajiny by ste tovar potrebovali doručiť?"
	QuestionProducts     = "Ktoré produkty vás zaujímajú? (napr. zrnková, mletá alebo instantná káva, hubové zmesi, kapsule)"
	QuestionVolume       = "Aký je približný objem odberu? (napr. kusy alebo kg mesačne)"
	QuestionContact      = "Posledná vec: pošlite prosím kontaktný e-mail, prípadne meno, firmu a web alebo Instagram."
	AskContactAgain      = "V správe som nenašiel e-mailovú adresu. Pošlite prosím kontaktný e-mail (napr. meno@firma.sk)."
	replySent            = "Ďakujeme! Dopyt sme odoslali obchodnému tímu, ozveme sa vám na %s."
	replyNotSent         = "Ďakujeme! Dopyt sa nepodarilo odoslať automaticky. Napíšte nám prosím priamo na %s."
)
