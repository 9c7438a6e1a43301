package preferences

import "fmt"

// FieldKind enumerates the form widget/value shapes a preference field can
// take. Dispatch over kinds is by exhaustive switch; adding a kind without
// handling it everywhere is a compile-away bug caught by String().
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldEmail
	FieldNumber
	FieldSelect
	FieldMultiSelect
	FieldMultiSelectText
	FieldCitySearch
	FieldTextarea
	FieldSliderRange
	FieldToggle
)

// String returns the wire name of the kind
func (k FieldKind) String() string {
	switch k {
	case FieldText:
		return "text"
	case FieldEmail:
		return "email"
	case FieldNumber:
		return "number"
	case FieldSelect:
		return "select"
	case FieldMultiSelect:
		return "multi-select"
	case FieldMultiSelectText:
		return "multi-select-text"
	case FieldCitySearch:
		return "city-search"
	case FieldTextarea:
		return "textarea"
	case FieldSliderRange:
		return "slider-range"
	case FieldToggle:
		return "toggle"
	}
	return fmt.Sprintf("FieldKind(%d)", int(k))
}

// Form sections, in display order
const (
	SectionBasic           = "basic"
	SectionLocation        = "location"
	SectionEducationCareer = "education-career"
	SectionLifestyle       = "lifestyle"
	SectionInterests       = "interests"
	SectionPersonality     = "personality"
	SectionAdditional      = "additional"
)

// FormField describes one configured preference field and its generic rules
type FormField struct {
	Name     string
	Section  string
	Kind     FieldKind
	Required bool

	// Numeric bounds (FieldNumber / FieldSliderRange)
	Min int
	Max int

	// List cap (FieldMultiSelect / FieldMultiSelectText)
	MaxItems int

	// Text bounds (FieldText / FieldTextarea)
	MaxLength int
	WarnBelow int
}

// Preference-context bounds. The lower height bound here (120cm) does not
// match the profile form's 100cm; the two surfaces shipped with different
// constants and neither has been declared canonical.
const (
	PrefMinAge        = 18
	PrefMinAgeCeiling = 80  // upper bound for the *minimum* age field
	PrefMaxAgeCeiling = 100 // upper bound for the *maximum* age field
	PrefHeightMin     = 120
	PrefHeightMax     = 250
	RadiusMin         = 1
	RadiusMax         = 1000

	MaxEducationLevels   = 5
	MaxProfessionsConfig = 10 // form config cap; the business rule caps at 8
	MaxPersonalityTraits = 8
	MaxInterestListItems = 10
	NoteMaxLength        = 1000
	NoteWarnBelow        = 20
)

// FormConfig returns the configured preference fields in form order
func FormConfig() []FormField {
	return []FormField{
		// Basic
		{Name: "genderPreference", Section: SectionBasic, Kind: FieldSelect, Required: true},
		{Name: "minAge", Section: SectionBasic, Kind: FieldNumber, Required: true, Min: PrefMinAge, Max: PrefMaxAgeCeiling},
		{Name: "maxAge", Section: SectionBasic, Kind: FieldNumber, Required: true, Min: PrefMinAge, Max: PrefMaxAgeCeiling},
		{Name: "minHeight", Section: SectionBasic, Kind: FieldSliderRange, Min: PrefHeightMin, Max: PrefHeightMax},
		{Name: "maxHeight", Section: SectionBasic, Kind: FieldSliderRange, Min: PrefHeightMin, Max: PrefHeightMax},

		// Location
		{Name: "locationPreference", Section: SectionLocation, Kind: FieldCitySearch, Required: true},
		{Name: "locationPreferenceRadius", Section: SectionLocation, Kind: FieldSliderRange, Min: RadiusMin, Max: RadiusMax},

		// Education & career
		{Name: "educationLevel", Section: SectionEducationCareer, Kind: FieldMultiSelect, MaxItems: MaxEducationLevels},
		{Name: "profession", Section: SectionEducationCareer, Kind: FieldMultiSelect, MaxItems: MaxProfessionsConfig},
		{Name: "minIncome", Section: SectionEducationCareer, Kind: FieldNumber},
		{Name: "maxIncome", Section: SectionEducationCareer, Kind: FieldNumber},
		{Name: "currency", Section: SectionEducationCareer, Kind: FieldSelect},

		// Lifestyle
		{Name: "smokingPreference", Section: SectionLifestyle, Kind: FieldSelect},
		{Name: "drinkingPreference", Section: SectionLifestyle, Kind: FieldSelect},
		{Name: "maritalStatusPreference", Section: SectionLifestyle, Kind: FieldSelect},
		{Name: "childrenPreference", Section: SectionLifestyle, Kind: FieldSelect},

		// Interests
		{Name: "hobbies", Section: SectionInterests, Kind: FieldMultiSelectText, MaxItems: MaxInterestListItems},
		{Name: "interests", Section: SectionInterests, Kind: FieldMultiSelectText, MaxItems: MaxInterestListItems},
		{Name: "booksReading", Section: SectionInterests, Kind: FieldMultiSelectText, MaxItems: MaxInterestListItems},
		{Name: "music", Section: SectionInterests, Kind: FieldMultiSelectText, MaxItems: MaxInterestListItems},
		{Name: "movies", Section: SectionInterests, Kind: FieldMultiSelectText, MaxItems: MaxInterestListItems},
		{Name: "travel", Section: SectionInterests, Kind: FieldMultiSelectText, MaxItems: MaxInterestListItems},
		{Name: "sports", Section: SectionInterests, Kind: FieldMultiSelectText, MaxItems: MaxInterestListItems},

		// Personality
		{Name: "personalityTraits", Section: SectionPersonality, Kind: FieldMultiSelect, MaxItems: MaxPersonalityTraits},
		{Name: "relationshipGoals", Section: SectionPersonality, Kind: FieldSelect, Required: true},
		{Name: "activityLevel", Section: SectionPersonality, Kind: FieldSelect},
		{Name: "petPreference", Section: SectionPersonality, Kind: FieldSelect},
		{Name: "lifestylePreference", Section: SectionPersonality, Kind: FieldMultiSelect},

		// Additional
		{Name: "whatOtherPersonShouldKnow", Section: SectionAdditional, Kind: FieldTextarea, MaxLength: NoteMaxLength, WarnBelow: NoteWarnBelow},
		{Name: "religion", Section: SectionAdditional, Kind: FieldText},
	}
}

// RequiredFieldNames returns the names flagged required in the form config
func RequiredFieldNames() []string {
	var names []string
	for _, f := range FormConfig() {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// fieldByName looks up a configured field
func fieldByName(name string) (FormField, bool) {
	for _, f := range FormConfig() {
		if f.Name == name {
			return f, true
		}
	}
	return FormField{}, false
}
