package domain

// PersonalityType selects a pre-written persona description for a bot.
type PersonalityType string

const (
	PersonalityFriendly     PersonalityType = "friendly"
	PersonalityProfessional PersonalityType = "professional"
	PersonalityCreative     PersonalityType = "creative"
	PersonalityAnalytical   PersonalityType = "analytical"
	PersonalityEmpathetic   PersonalityType = "empathetic"
	PersonalityHumorous     PersonalityType = "humorous"
	PersonalityAdventurous  PersonalityType = "adventurous"
	PersonalityIntellectual PersonalityType = "intellectual"
	PersonalityCustom       PersonalityType = "custom"
)
