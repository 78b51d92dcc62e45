package compatibility

import "math"

type EarlyRiser string

const (
	EarlyBird     EarlyRiser = "early_bird"
	NightOwl      EarlyRiser = "night_owl"
	FlexibleHours EarlyRiser = "flexible"
)

type ChoreFrequency string

const (
	ChoresDaily    ChoreFrequency = "daily"
	ChoresWeekly   ChoreFrequency = "weekly"
	ChoresAsNeeded ChoreFrequency = "as_needed"
)

type ItemSharing string

const (
	ShareEverything ItemSharing = "share_everything"
	ShareSome       ItemSharing = "share_some"
	KeepSeparate    ItemSharing = "keep_separate"
)

type CostSharing string

const (
	SplitEqually CostSharing = "split_equally"
	Proportional CostSharing = "proportional"
	PayOwn       CostSharing = "pay_own"
)

type Closeness string

const (
	CloseFriends Closeness = "close_friends"
	Friendly     Closeness = "friendly"
	Independent  Closeness = "independent"
)

type HostingFrequency string

const (
	HostingNever   HostingFrequency = "never"
	HostingRarely  HostingFrequency = "rarely"
	HostingMonthly HostingFrequency = "monthly"
	HostingWeekly  HostingFrequency = "weekly"
	HostingOften   HostingFrequency = "often"
)

type NoiseTolerance string

const (
	NoiseSilent   NoiseTolerance = "silent"
	NoiseLow      NoiseTolerance = "low"
	NoiseModerate NoiseTolerance = "moderate"
	NoiseHigh     NoiseTolerance = "high"
)

type GroupActivities string

const (
	GroupNotInterested GroupActivities = "not_interested"
	GroupOccasionally  GroupActivities = "occasionally"
	GroupRegularly     GroupActivities = "regularly"
	GroupLoveIt        GroupActivities = "love_it"
)

type CookingFrequency string

const (
	CookingDaily        CookingFrequency = "daily"
	CookingFewTimesWeek CookingFrequency = "few_times_week"
	CookingRarely       CookingFrequency = "rarely"
	CookingNever        CookingFrequency = "never"
)

type PetSituation string

const (
	HasPets    PetSituation = "has_pets"
	WantsPets  PetSituation = "wants_pets"
	OpenToPets PetSituation = "open_to_pets"
	NoPets     PetSituation = "no_pets"
)

type SmokingDrinking string

const (
	SubstancesNeither SmokingDrinking = "neither"
	SubstancesSmoke   SmokingDrinking = "smoke"
	SubstancesDrink   SmokingDrinking = "drink"
	SubstancesBoth    SmokingDrinking = "both"
)

type BillPayment string

const (
	BillsVeryStrict BillPayment = "very_strict"
	BillsOnTime     BillPayment = "on_time"
	BillsFlexible   BillPayment = "flexible"
)

type GenderPreference string

const (
	GenderAny        GenderPreference = "any"
	GenderFemaleOnly GenderPreference = "female_only"
	GenderMixed      GenderPreference = "mixed"
	GenderMaleOnly   GenderPreference = "male_only"
)

type Allergy string

const (
	AllergyNone   Allergy = "none"
	AllergyPets   Allergy = "pets"
	AllergyDust   Allergy = "dust"
	AllergyPollen Allergy = "pollen"
	AllergyFood   Allergy = "food"
	AllergyOther  Allergy = "other"
)

var cookingScores = map[pair[CookingFrequency]]float64{
	{CookingDaily, CookingFewTimesWeek}:  80,
	{CookingDaily, CookingRarely}:        55,
	{CookingDaily, CookingNever}:         40,
	{CookingFewTimesWeek, CookingRarely}: 75,
	{CookingRarely, CookingNever}:        85,
}

var petScores = map[pair[PetSituation]]float64{
	{HasPets, WantsPets}:    90,
	{HasPets, OpenToPets}:   80,
	{HasPets, NoPets}:       20,
	{WantsPets, OpenToPets}: 85,
	{WantsPets, NoPets}:     30,
}

var genderAnchors = map[GenderPreference]float64{
	GenderFemaleOnly: 0,
	GenderMixed:      50,
	GenderMaleOnly:   100,
}

// lifestyleAttributes is the registry consulted by LifestyleDetailScore.
// New survey attributes are added here only.
var lifestyleAttributes = []attribute{
	{"early_riser", exactMatch[EarlyRiser]{
		values:  []EarlyRiser{EarlyBird, NightOwl, FlexibleHours},
		partial: 60,
	}},
	{"chore_frequency", exactMatch[ChoreFrequency]{
		values:  []ChoreFrequency{ChoresDaily, ChoresWeekly, ChoresAsNeeded},
		partial: 65,
	}},
	{"sharing_items", exactMatch[ItemSharing]{
		values:  []ItemSharing{ShareEverything, ShareSome, KeepSeparate},
		partial: 70,
	}},
	{"cost_sharing", exactMatch[CostSharing]{
		values:  []CostSharing{SplitEqually, Proportional, PayOwn},
		partial: 65,
	}},
	{"relationship_closeness", exactMatch[Closeness]{
		values:  []Closeness{CloseFriends, Friendly, Independent},
		partial: 60,
	}},
	{"hosting_frequency", ordinal[HostingFrequency]{anchors: map[HostingFrequency]float64{
		HostingNever: 0, HostingRarely: 25, HostingMonthly: 50, HostingWeekly: 75, HostingOften: 100,
	}}},
	{"noise_tolerance", ordinal[NoiseTolerance]{anchors: map[NoiseTolerance]float64{
		NoiseSilent: 0, NoiseLow: 30, NoiseModerate: 60, NoiseHigh: 100,
	}}},
	{"group_activities", ordinal[GroupActivities]{anchors: map[GroupActivities]float64{
		GroupNotInterested: 0, GroupOccasionally: 40, GroupRegularly: 75, GroupLoveIt: 100,
	}}},
	{"cooking_frequency", pairTable[CookingFrequency]{
		values:   []CookingFrequency{CookingDaily, CookingFewTimesWeek, CookingRarely, CookingNever},
		scores:   cookingScores,
		fallback: 50,
	}},
	{"pet_situation", pairTable[PetSituation]{
		values:   []PetSituation{HasPets, WantsPets, OpenToPets, NoPets},
		scores:   petScores,
		fallback: 70,
	}},
	{"smoking_drinking", custom[SmokingDrinking]{
		values: []SmokingDrinking{SubstancesNeither, SubstancesSmoke, SubstancesDrink, SubstancesBoth},
		score:  smokingDrinkingScore,
	}},
	{"bill_payment", custom[BillPayment]{
		values: []BillPayment{BillsVeryStrict, BillsOnTime, BillsFlexible},
		score:  billPaymentScore,
	}},
	{"gender_preference", custom[GenderPreference]{
		values: []GenderPreference{GenderAny, GenderFemaleOnly, GenderMixed, GenderMaleOnly},
		score:  genderPreferenceScore,
	}},
	{"allergies", custom[Allergy]{
		values: []Allergy{AllergyNone, AllergyPets, AllergyDust, AllergyPollen, AllergyFood, AllergyOther},
		score:  allergyScore,
	}},
}

func smokingDrinkingScore(a, b SmokingDrinking) float64 {
	switch {
	case a == b:
		return 100
	case a == SubstancesNeither || b == SubstancesNeither:
		return 40
	default:
		return 60
	}
}

func billPaymentScore(a, b BillPayment) float64 {
	switch {
	case a == b:
		return 100
	case a == BillsVeryStrict || b == BillsVeryStrict:
		return 50
	default:
		return 75
	}
}

func genderPreferenceScore(a, b GenderPreference) float64 {
	switch {
	case a == GenderAny && b == GenderAny:
		return 100
	case a == GenderAny || b == GenderAny:
		return 75
	default:
		return math.Max(0, 100-math.Abs(genderAnchors[a]-genderAnchors[b]))
	}
}

func allergyScore(a, b Allergy) float64 {
	switch {
	case a == b:
		return 100
	case a == AllergyNone || b == AllergyNone:
		return 80
	default:
		return 60
	}
}
