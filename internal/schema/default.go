package schema

// Default returns the built-in adverse-events schema. Column identifiers
// follow the CDISC SDTM AE domain naming.
func Default() *Registry {
	reg, err := New(
		"Adverse Events",
		"Contains adverse event records from clinical trials",
		[]Column{
			{
				ID:          "USUBJID",
				Label:       "Unique Subject Identifier",
				Description: "Unique identifier for each patient/subject in the study",
				Type:        TypeString,
				Cues:        []string{"subject identification", "patient ID", "participant"},
			},
			{
				ID:          "AETERM",
				Label:       "Reported Term for the Adverse Event",
				Description: "The verbatim term used to identify the adverse event, specific condition or symptom",
				Type:        TypeString,
				Cues:        []string{"specific condition", "symptom", "adverse event name", "what happened", "condition name", "event term"},
			},
			{
				ID:          "AEDECOD",
				Label:       "Dictionary-Derived Term",
				Description: "Standardized/coded term for the adverse event from MedDRA dictionary",
				Type:        TypeString,
				Cues:        []string{"coded term", "standard term", "MedDRA term", "preferred term"},
			},
			{
				ID:          "AESOC",
				Label:       "Primary System Organ Class",
				Description: "The body system or organ class affected (e.g., CARDIAC DISORDERS, NERVOUS SYSTEM DISORDERS)",
				Type:        TypeString,
				Cues:        []string{"body system", "organ class", "system organ class", "SOC", "organ", "body part", "system"},
			},
			{
				ID:          "AEBODSYS",
				Label:       "Body System or Organ Class",
				Description: "Body system affected by the adverse event",
				Type:        TypeString,
				Cues:        []string{"body system", "organ system"},
			},
			{
				ID:          "AESEV",
				Label:       "Severity/Intensity",
				Description: "The severity or intensity of the adverse event (MILD, MODERATE, SEVERE)",
				Type:        TypeString,
				Values:      []string{"MILD", "MODERATE", "SEVERE"},
				Cues:        []string{"severity", "intensity", "how severe", "how bad", "seriousness level", "grade"},
			},
			{
				ID:          "AESER",
				Label:       "Serious Event",
				Description: "Whether the adverse event is serious (Y/N)",
				Type:        TypeString,
				Values:      []string{"Y", "N"},
				Cues:        []string{"serious", "SAE", "serious adverse event"},
			},
			{
				ID:          "AEREL",
				Label:       "Causality/Relationship to Treatment",
				Description: "Relationship of adverse event to study treatment (PROBABLE, POSSIBLE, REMOTE, NONE)",
				Type:        TypeString,
				Cues:        []string{"related", "causality", "relationship", "drug related", "treatment related", "caused by"},
			},
			{
				ID:          "AEOUT",
				Label:       "Outcome of Adverse Event",
				Description: "The outcome/resolution of the adverse event",
				Type:        TypeString,
				Cues:        []string{"outcome", "resolved", "resolution", "result", "recovered"},
			},
			{
				ID:          "AEACN",
				Label:       "Action Taken with Study Treatment",
				Description: "Action taken with study treatment due to the adverse event",
				Type:        TypeString,
				Cues:        []string{"action taken", "treatment action", "drug action", "dose action"},
			},
			{
				ID:          "AESTDTC",
				Label:       "Start Date/Time of Adverse Event",
				Description: "When the adverse event started",
				Type:        TypeDatetime,
				Cues:        []string{"start date", "onset date", "when started", "beginning"},
			},
			{
				ID:          "AEENDTC",
				Label:       "End Date/Time of Adverse Event",
				Description: "When the adverse event ended/resolved",
				Type:        TypeDatetime,
				Cues:        []string{"end date", "resolution date", "when ended", "when resolved"},
			},
			{
				ID:          "AESTDY",
				Label:       "Study Day of Start of Adverse Event",
				Description: "Study day when adverse event started (relative to reference date)",
				Type:        TypeInteger,
				Cues:        []string{"study day", "day of onset", "which day"},
			},
			{
				ID:          "AELLT",
				Label:       "Lowest Level Term",
				Description: "MedDRA Lowest Level Term for the adverse event",
				Type:        TypeString,
				Cues:        []string{"lowest level term", "LLT"},
			},
			{
				ID:          "AEHLT",
				Label:       "High Level Term",
				Description: "MedDRA High Level Term grouping",
				Type:        TypeString,
				Cues:        []string{"high level term", "HLT"},
			},
			{
				ID:          "AEHLGT",
				Label:       "High Level Group Term",
				Description: "MedDRA High Level Group Term",
				Type:        TypeString,
				Cues:        []string{"high level group", "HLGT"},
			},
		},
	)
	if err != nil {
		// The built-in schema is a compile-time constant; a construction
		// failure is a programming error.
		panic(err)
	}
	return reg
}
