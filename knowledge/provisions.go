package knowledge

import "legalgpt-portal/models"

func usProvisions() []models.Category {
	return []models.Category{
		{
			Name: "Constitutional Law",
			Provisions: []models.Provision{
				{
					Title:     "First Amendment",
					Provision: "Congress shall make no law respecting an establishment of religion, or prohibiting the free exercise thereof; or abridging the freedom of speech, or of the press; or the right of the people peaceably to assemble, and to petition the Government for a redress of grievances.",
					Article:   "Amendment I",
				},
				{
					Title:     "Fourth Amendment",
					Provision: "The right of the people to be secure in their persons, houses, papers, and effects, against unreasonable searches and seizures, shall not be violated, and no Warrants shall issue, but upon probable cause, supported by Oath or affirmation, and particularly describing the place to be searched, and the persons or things to be seized.",
					Article:   "Amendment IV",
				},
				{
					Title:     "Fifth Amendment",
					Provision: "No person shall be held to answer for a capital, or otherwise infamous crime, unless on a presentment or indictment of a Grand Jury, except in cases arising in the land or naval forces, or in the Militia, when in actual service in time of War or public danger; nor shall any person be subject for the same offence to be twice put in jeopardy of life or limb; nor shall be compelled in any criminal case to be a witness against himself, nor be deprived of life, liberty, or property, without due process of law; nor shall private property be taken for public use, without just compensation.",
					Article:   "Amendment V",
				},
				{
					Title:     "Fourteenth Amendment - Due Process",
					Provision: "No State shall make or enforce any law which shall abridge the privileges or immunities of citizens of the United States; nor shall any State deprive any person of life, liberty, or property, without due process of law; nor deny to any person within its jurisdiction the equal protection of the laws.",
					Article:   "Amendment XIV, Section 1",
				},
			},
		},
		{
			Name: "Criminal Law",
			Provisions: []models.Provision{
				{
					Title:     "18 U.S.C. § 371 - Conspiracy",
					Provision: "If two or more persons conspire either to commit any offense against the United States, or to defraud the United States, or any agency thereof in any manner or for any purpose, and one or more of such persons do any act to effect the object of the conspiracy, each shall be fined under this title or imprisoned not more than five years, or both.",
					Article:   "18 U.S.C. § 371",
				},
				{
					Title:     "18 U.S.C. § 1341 - Mail Fraud",
					Provision: "Whoever, having devised or intending to devise any scheme or artifice to defraud, or for obtaining money or property by means of false or fraudulent pretenses, representations, or promises... uses or causes to be used any facility of interstate or foreign commerce, including any facility of a national securities exchange, with intent to execute such scheme or artifice, shall be fined not more than $1,000,000 or imprisoned not more than 30 years, or both.",
					Article:   "18 U.S.C. § 1341",
				},
				{
					Title:     "18 U.S.C. § 1343 - Wire Fraud",
					Provision: "Whoever, having devised or intending to devise any scheme or artifice to defraud, or for obtaining money or property by means of false or fraudulent pretenses, representations, or promises, transmits or causes to be transmitted by means of wire, radio, or television communication in interstate or foreign commerce, any writings, signs, signals, pictures, or sounds for the purpose of executing such scheme or artifice, shall be fined under this title or imprisoned not more than 20 years, or both.",
					Article:   "18 U.S.C. § 1343",
				},
			},
		},
		{
			Name: "Civil Rights",
			Provisions: []models.Provision{
				{
					Title:     "42 U.S.C. § 1983 - Civil Rights Action",
					Provision: "Every person who, under color of any statute, ordinance, regulation, custom, or usage, of any State or Territory or the District of Columbia, subjects, or causes to be subjected, any citizen of the United States or other person within the jurisdiction thereof to the deprivation of any rights, privileges, or immunities secured by the Constitution and laws, shall be liable to the party injured in an action at law, suit in equity, or other proper proceeding for redress.",
					Article:   "42 U.S.C. § 1983",
				},
				{
					Title:     "Title VII of Civil Rights Act",
					Provision: "It shall be an unlawful employment practice for an employer to fail or refuse to hire or to discharge any individual, or otherwise to discriminate against any individual with respect to his compensation, terms, conditions, or privileges of employment, because of such individual's race, color, religion, sex, or national origin.",
					Article:   "42 U.S.C. § 2000e-2",
				},
				{
					Title:     "Title II of Civil Rights Act - Public Accommodations",
					Provision: "All persons shall be entitled to the full and equal enjoyment of the goods, services, facilities, and privileges, advantages, and accommodations of any place of public accommodation, as defined in this section, without discrimination or segregation on the ground of race, color, religion, or national origin.",
					Article:   "42 U.S.C. § 2000a",
				},
			},
		},
		{
			Name: "Contract Law",
			Provisions: []models.Provision{
				{
					Title:     "Uniform Commercial Code - Good Faith",
					Provision: "Every contract or duty within this Act imposes an obligation of good faith in its performance or enforcement. 'Good faith' means honesty in fact in the conduct or transaction concerned.",
					Article:   "U.C.C. § 1-304",
				},
				{
					Title:     "Restatement (Second) of Contracts - Offer and Acceptance",
					Provision: "An offer is the manifestation of willingness to enter into a bargain, so made as to justify another person in understanding that his assent to that bargain is invited and will conclude it.",
					Article:   "Restatement (Second) of Contracts § 24",
				},
			},
		},
		{
			Name: "Tort Law",
			Provisions: []models.Provision{
				{
					Title:     "Negligence - Duty of Care",
					Provision: "A person is negligent when they fail to exercise the care that a reasonably prudent person would exercise in like circumstances. The duty of care requires that individuals act with reasonable care to avoid causing harm to others.",
					Article:   "Restatement (Second) of Torts § 282",
				},
				{
					Title:     "Strict Liability - Defective Products",
					Provision: "One who sells any product in a defective condition unreasonably dangerous to the user or consumer or to his property is subject to liability for physical harm thereby caused to the ultimate user or consumer, or to his property, if the seller is engaged in the business of selling such a product, and it is expected to and does reach the user or consumer without substantial change in the condition in which it is sold.",
					Article:   "Restatement (Second) of Torts § 402A",
				},
			},
		},
	}
}
