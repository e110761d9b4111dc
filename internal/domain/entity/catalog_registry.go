package entity

import "slices"

// CatalogKind names a lookup table. The value doubles as the table name.
type CatalogKind string

const (
	CatalogAlertTypes              CatalogKind = "alert_types"
	CatalogActivityTypes           CatalogKind = "activity_types"
	CatalogCareTypes               CatalogKind = "care_types"
	CatalogCaregiverAssignmentType CatalogKind = "caregiver_assignment_types"
	CatalogDeviceTypes             CatalogKind = "device_types"
	CatalogDifficultyLevels        CatalogKind = "difficulty_levels"
	CatalogEventTypes              CatalogKind = "event_types"
	CatalogReferralTypes           CatalogKind = "referral_types"
	CatalogRelationshipTypes       CatalogKind = "relationship_types"
	CatalogReminderTypes           CatalogKind = "reminder_types"
	CatalogReportTypes             CatalogKind = "report_types"
	CatalogServiceTypes            CatalogKind = "service_types"
	CatalogShiftObservationTypes   CatalogKind = "shift_observation_types"
	CatalogStatusTypes             CatalogKind = "status_types"
)

// String returns the table name.
func (k CatalogKind) String() string {
	return string(k)
}

// UniquenessScope says which columns make a catalog name unique.
type UniquenessScope string

const (
	// ScopeGlobal: name is unique within the table.
	ScopeGlobal UniquenessScope = "global"
	// ScopeCategory: (name, category) is unique; the same name may repeat across categories.
	ScopeCategory UniquenessScope = "category"
)

// CatalogSeed is one default row inserted by seeding.
type CatalogSeed struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
}

// CatalogSpec is the static policy of one catalog.
//
// Reads return inactive rows too (an admin has to be able to find and
// re-activate them) and Delete is always a soft delete; Purge is the only
// way to remove a row. Both rules hold for every kind.
type CatalogSpec struct {
	Kind             CatalogKind     `json:"kind"`
	Label            string          `json:"label"`
	Scope            UniquenessScope `json:"uniqueness_scope"`
	CategoryRequired bool            `json:"category_required"`
	Defaults         []CatalogSeed   `json:"defaults,omitempty"`
}

// Key builds the uniqueness key of a row under this spec.
func (s CatalogSpec) Key(name string, category *string) string {
	if s.Scope == ScopeGlobal || category == nil {
		return name
	}

	return name + "\x00" + *category
}

// UniqueColumns lists the columns backing the unique index.
func (s CatalogSpec) UniqueColumns() []string {
	if s.Scope == ScopeCategory {
		return []string{"name", "category"}
	}

	return []string{"name"}
}

// Entries converts the default seeds into catalog rows.
func (s CatalogSpec) Entries() []*CatalogEntry {
	entries := make([]*CatalogEntry, 0, len(s.Defaults))
	for _, seed := range s.Defaults {
		entry := &CatalogEntry{
			Name:     seed.Name,
			IsActive: true,
		}
		if seed.Description != "" {
			entry.Description = &seed.Description
		}
		if seed.Category != "" {
			entry.Category = &seed.Category
		}
		entries = append(entries, entry)
	}

	return entries
}

//nolint:gochecknoglobals
var catalogSpecs = []CatalogSpec{
	{Kind: CatalogAlertTypes, Label: "Alert types", Scope: ScopeGlobal, Defaults: alertTypeSeeds},
	{Kind: CatalogActivityTypes, Label: "Activity types", Scope: ScopeGlobal},
	{Kind: CatalogCareTypes, Label: "Care types", Scope: ScopeGlobal, Defaults: careTypeSeeds},
	{Kind: CatalogCaregiverAssignmentType, Label: "Caregiver assignment types", Scope: ScopeGlobal, Defaults: caregiverAssignmentTypeSeeds},
	{Kind: CatalogDeviceTypes, Label: "Device types", Scope: ScopeGlobal, Defaults: deviceTypeSeeds},
	{Kind: CatalogDifficultyLevels, Label: "Difficulty levels", Scope: ScopeGlobal},
	{Kind: CatalogEventTypes, Label: "Event types", Scope: ScopeGlobal, Defaults: eventTypeSeeds},
	{Kind: CatalogReferralTypes, Label: "Referral types", Scope: ScopeGlobal},
	{Kind: CatalogRelationshipTypes, Label: "Relationship types", Scope: ScopeGlobal},
	{Kind: CatalogReminderTypes, Label: "Reminder types", Scope: ScopeGlobal, Defaults: reminderTypeSeeds},
	{Kind: CatalogReportTypes, Label: "Report types", Scope: ScopeGlobal},
	{Kind: CatalogServiceTypes, Label: "Service types", Scope: ScopeGlobal},
	{Kind: CatalogShiftObservationTypes, Label: "Shift observation types", Scope: ScopeGlobal},
	{Kind: CatalogStatusTypes, Label: "Status types", Scope: ScopeCategory, CategoryRequired: true, Defaults: statusTypeSeeds},
}

// CatalogSpecs returns every registered catalog in table-name order.
func CatalogSpecs() []CatalogSpec {
	return slices.Clone(catalogSpecs)
}

// LookupCatalog resolves a kind from its table name.
func LookupCatalog(kind string) (CatalogSpec, bool) {
	for _, spec := range catalogSpecs {
		if string(spec.Kind) == kind {
			return spec, true
		}
	}

	return CatalogSpec{}, false
}
