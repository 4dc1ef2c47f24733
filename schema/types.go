package schema

// SessionID identifies one terminal session (SSH connection or local shell).
type SessionID string

// ThemeName identifies a terminal theme.
type ThemeName string

// Collection names a content collection the terminal reads.
type Collection string

// Content collections tracked for readiness.
const (
	CollectionProfile      Collection = "profile"
	CollectionProjects     Collection = "projects"
	CollectionSkills       Collection = "skills"
	CollectionAchievements Collection = "achievements"
	CollectionSocialLinks  Collection = "social-links"
	CollectionMotivation   Collection = "motivation"
	CollectionStats        Collection = "stats"
)

// Collections lists every content collection in load order.
func Collections() []Collection {
	return []Collection{
		CollectionProfile,
		CollectionProjects,
		CollectionSkills,
		CollectionAchievements,
		CollectionSocialLinks,
		CollectionMotivation,
		CollectionStats,
	}
}
