package models

// LevelTier is one band of the 5-level job-hunt progression. Color, icon and
// badge tokens are opaque UI hints passed through to clients untouched.
type LevelTier struct {
	Tier      int    `json:"tier"`
	MinXP     int64  `json:"min_xp"` // inclusive lower bound
	Name      string `json:"name"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
	Badge     string `json:"badge"`
	Advantage string `json:"advantage"`
}

// LevelTable is ordered by MinXP ascending; a user's tier is the highest
// entry whose MinXP <= their XP (boundary values belong to the higher tier).
var LevelTable = []LevelTier{
	{
		Tier:      1,
		MinXP:     0,
		Name:      "Fresh Start",
		Color:     "text-gray-300",
		Icon:      "🌱",
		Badge:     "bg-gradient-to-r from-gray-400 to-gray-500",
		Advantage: "Getting started - Complete your profile to level up",
	},
	{
		Tier:      2,
		MinXP:     400,
		Name:      "Rising Pro",
		Color:     "text-cyan-300",
		Icon:      "⭐",
		Badge:     "bg-gradient-to-r from-cyan-400 to-blue-500",
		Advantage: "Pro visibility, better search ranking, profile highlights, priority features",
	},
	{
		Tier:      3,
		MinXP:     1000,
		Name:      "Career Champion",
		Color:     "text-pink-300",
		Icon:      "🏆",
		Badge:     "bg-gradient-to-r from-pink-400 to-red-500",
		Advantage: "Champion visibility, enhanced placement, skill assessments, priority ranking",
	},
	{
		Tier:      4,
		MinXP:     2000,
		Name:      "Elite Professional",
		Color:     "text-purple-300",
		Icon:      "💎",
		Badge:     "bg-gradient-to-r from-purple-400 to-pink-500",
		Advantage: "Elite visibility, VIP support, priority alerts, enhanced profile",
	},
	{
		Tier:      5,
		MinXP:     3500,
		Name:      "Legendary Hunter",
		Color:     "text-yellow-300",
		Icon:      "👑",
		Badge:     "bg-gradient-to-r from-yellow-400 to-orange-500",
		Advantage: "Maximum visibility, priority support, exclusive job alerts, featured profile",
	},
}

// PriorityDescriptor is the employer-facing visibility class derived 1:1 from
// a level tier. Boost equals the tier number, so it is strictly increasing.
type PriorityDescriptor struct {
	Priority   string `json:"priority"`
	Boost      int    `json:"boost"`
	Visibility string `json:"visibility"`
	Support    string `json:"support"`
}

// PriorityTable is indexed by tier number - 1.
var PriorityTable = []PriorityDescriptor{
	{Priority: "standard", Boost: 1, Visibility: "Standard", Support: "Basic support"},
	{Priority: "pro", Boost: 2, Visibility: "Pro", Support: "Standard support"},
	{Priority: "champion", Boost: 3, Visibility: "Champion", Support: "Enhanced support"},
	{Priority: "elite", Boost: 4, Visibility: "Elite", Support: "Priority support"},
	{Priority: "legendary", Boost: 5, Visibility: "Maximum", Support: "VIP support"},
}
