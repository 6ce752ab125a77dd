package knowledge

import "legalgpt-portal/models"

const supremeCourt = "Supreme Court of the United States"

func landmarkCases() []models.Case {
	return []models.Case{
		{
			Title:      "Marbury v. Madison (1803)",
			Court:      supremeCourt,
			Summary:    "Established the principle of judicial review, allowing courts to determine the constitutionality of laws.",
			Citation:   "5 U.S. 137 (1803)",
			KeyHolding: "The Supreme Court has the authority to review and invalidate laws that conflict with the Constitution.",
		},
		{
			Title:      "Brown v. Board of Education (1954)",
			Court:      supremeCourt,
			Summary:    "Declared state laws establishing separate public schools for black and white students to be unconstitutional.",
			Citation:   "347 U.S. 483 (1954)",
			KeyHolding: "Separate educational facilities are inherently unequal, violating the Equal Protection Clause.",
		},
		{
			Title:      "Miranda v. Arizona (1966)",
			Court:      supremeCourt,
			Summary:    "Established Miranda rights requiring law enforcement to inform suspects of their rights before custodial interrogation.",
			Citation:   "384 U.S. 436 (1966)",
			KeyHolding: "Suspects must be informed of their right to remain silent and right to an attorney.",
		},
		{
			Title:      "Roe v. Wade (1973)",
			Court:      supremeCourt,
			Summary:    "Recognized a woman's constitutional right to privacy, including the right to terminate a pregnancy.",
			Citation:   "410 U.S. 113 (1973)",
			KeyHolding: "State laws prohibiting abortion violated the Due Process Clause of the Fourteenth Amendment.",
		},
		{
			Title:      "United States v. Nixon (1974)",
			Court:      supremeCourt,
			Summary:    "Limited executive privilege and ordered President Nixon to turn over Watergate tapes.",
			Citation:   "418 U.S. 683 (1974)",
			KeyHolding: "Executive privilege is not absolute and cannot prevent production of evidence in criminal trials.",
		},
		{
			Title:      "Citizens United v. FEC (2010)",
			Court:      supremeCourt,
			Summary:    "Held that corporate funding of independent political broadcasts in candidate elections cannot be limited.",
			Citation:   "558 U.S. 310 (2010)",
			KeyHolding: "Political spending by corporations, associations, and labor unions is protected free speech.",
		},
		{
			Title:      "Obergefell v. Hodges (2015)",
			Court:      supremeCourt,
			Summary:    "Held that the fundamental right to marry is guaranteed to same-sex couples by both the Due Process Clause and the Equal Protection Clause of the Fourteenth Amendment.",
			Citation:   "576 U.S. 644 (2015)",
			KeyHolding: "The Constitution requires states to license and recognize marriages between two people of the same sex.",
		},
		{
			Title:      "Gideon v. Wainwright (1963)",
			Court:      supremeCourt,
			Summary:    "Held that the Sixth Amendment's right to counsel applies to state criminal prosecutions through the Fourteenth Amendment.",
			Citation:   "372 U.S. 335 (1963)",
			KeyHolding: "States must provide counsel for defendants who cannot afford an attorney in criminal cases.",
		},
		{
			Title:      "New York Times Co. v. Sullivan (1964)",
			Court:      supremeCourt,
			Summary:    "Established the actual malice standard for defamation cases involving public officials.",
			Citation:   "376 U.S. 254 (1964)",
			KeyHolding: "Public officials must prove actual malice (knowing falsehood or reckless disregard) to win defamation suits.",
		},
		{
			Title:      "Mapp v. Ohio (1961)",
			Court:      supremeCourt,
			Summary:    "Held that evidence obtained in violation of the Fourth Amendment is inadmissible in state courts.",
			Citation:   "367 U.S. 643 (1961)",
			KeyHolding: "The exclusionary rule applies to state criminal proceedings through the Fourteenth Amendment.",
		},
	}
}
