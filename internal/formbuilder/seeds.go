package formbuilder

// SeedConfigs returns the built-in global form catalog. Imported with
// BulkImportFormsIfNotExists on startup so re-deploys never duplicate them.
func SeedConfigs() []FormConfig {
	required := &ValidationRules{Required: true}

	return []FormConfig{
		{
			Code:                 "emergency-drill-report",
			Name:                 "Emergency Drill Report",
			Description:          "Record of a completed emergency response drill",
			CorElement:           11,
			Frequency:            "quarterly",
			EstimatedTimeMinutes: 20,
			Icon:                 "siren",
			Color:                "#D32F2F",
			IsMandatory:          true,
			Sections: []SectionConfig{
				{
					Title:      "Drill Details",
					OrderIndex: 0,
					Fields: []FieldConfig{
						{Code: "drill_date", Label: "Drill Date", FieldType: FieldTypeDate, ValidationRules: required, OrderIndex: 0, Width: "half"},
						{Code: "drill_type", Label: "Drill Type", FieldType: FieldTypeDropdown, Options: StringOptions("fire", "evacuation", "spill", "medical", "severe_weather"), ValidationRules: required, OrderIndex: 1, Width: "half"},
						{Code: "start_time", Label: "Start Time", FieldType: FieldTypeTime, ValidationRules: required, OrderIndex: 2, Width: "half"},
						{Code: "end_time", Label: "End Time", FieldType: FieldTypeTime, ValidationRules: required, OrderIndex: 3, Width: "half"},
						{Code: "jobsite", Label: "Jobsite", FieldType: FieldTypeJobsiteSelect, ValidationRules: required, OrderIndex: 4},
					},
				},
				{
					Title:      "Evaluation",
					OrderIndex: 1,
					Fields: []FieldConfig{
						{Code: "participants", Label: "Participants", FieldType: FieldTypeWorkerSelect, ValidationRules: required, OrderIndex: 0},
						{Code: "objectives_met", Label: "Were all objectives met?", FieldType: FieldTypeRadio, Options: StringOptions("yes", "no"), ValidationRules: required, OrderIndex: 1, Width: "half"},
						{Code: "deficiencies", Label: "Deficiencies Observed", FieldType: FieldTypeTextarea, OrderIndex: 2,
							ConditionalLogic: &ConditionalLogic{FieldCode: "objectives_met", Operator: "equals", Value: "no"}},
						{Code: "coordinator_signature", Label: "Drill Coordinator Signature", FieldType: FieldTypeSignature, ValidationRules: required, OrderIndex: 3},
					},
				},
			},
			Workflow: &WorkflowConfig{
				SubmitToRole: "safety_manager",
				NotifyRoles:  []string{"site_supervisor"},
				CreatesTask:  true,
				TaskTemplate: map[string]interface{}{
					"title":    "Follow up on drill deficiencies",
					"due_days": 7,
				},
				SyncPriority:     2,
				RequiresApproval: true,
			},
		},
		{
			Code:                 "worker-orientation",
			Name:                 "New Worker Orientation",
			Description:          "Site orientation checklist for new workers",
			CorElement:           4,
			Frequency:            "as_needed",
			EstimatedTimeMinutes: 45,
			Icon:                 "user-plus",
			Color:                "#1976D2",
			IsMandatory:          true,
			Sections: []SectionConfig{
				{
					Title:      "Worker Information",
					OrderIndex: 0,
					Fields: []FieldConfig{
						{Code: "worker", Label: "Worker", FieldType: FieldTypeWorkerSelect, ValidationRules: required, OrderIndex: 0, Width: "half"},
						{Code: "start_date", Label: "Start Date", FieldType: FieldTypeDate, ValidationRules: required, OrderIndex: 1, Width: "half"},
						{Code: "trade", Label: "Trade / Position", FieldType: FieldTypeText, ValidationRules: required, OrderIndex: 2},
					},
				},
				{
					Title:      "Orientation Topics",
					OrderIndex: 1,
					Fields: []FieldConfig{
						{Code: "topics_covered", Label: "Topics Covered", FieldType: FieldTypeMultiselect, Options: StringOptions("site_rules", "emergency_procedures", "ppe_requirements", "hazard_reporting", "first_aid_locations", "whmis"), ValidationRules: required, OrderIndex: 0},
						{Code: "questions", Label: "Worker Questions / Notes", FieldType: FieldTypeTextarea, OrderIndex: 1},
						{Code: "worker_signature", Label: "Worker Signature", FieldType: FieldTypeSignature, ValidationRules: required, OrderIndex: 2, Width: "half"},
						{Code: "trainer_signature", Label: "Trainer Signature", FieldType: FieldTypeSignature, ValidationRules: required, OrderIndex: 3, Width: "half"},
					},
				},
			},
			Workflow: &WorkflowConfig{
				SubmitToRole:     "hr_admin",
				NotifyRoles:      []string{"site_supervisor", "safety_manager"},
				SyncPriority:     3,
				RequiresApproval: false,
			},
		},
		{
			Code:                 "hazard-assessment",
			Name:                 "Formal Hazard Assessment",
			Description:          "Identification and risk rating of workplace hazards",
			CorElement:           2,
			Frequency:            "annual",
			EstimatedTimeMinutes: 60,
			Icon:                 "alert-triangle",
			Color:                "#F57C00",
			IsMandatory:          true,
			Sections: []SectionConfig{
				{
					Title:      "Assessment Scope",
					OrderIndex: 0,
					Fields: []FieldConfig{
						{Code: "jobsite", Label: "Jobsite", FieldType: FieldTypeJobsiteSelect, ValidationRules: required, OrderIndex: 0, Width: "half"},
						{Code: "assessment_date", Label: "Assessment Date", FieldType: FieldTypeDate, ValidationRules: required, OrderIndex: 1, Width: "half"},
						{Code: "task_description", Label: "Task / Area Assessed", FieldType: FieldTypeTextarea, ValidationRules: required, OrderIndex: 2},
					},
				},
				{
					Title:        "Identified Hazards",
					OrderIndex:   1,
					IsRepeatable: true,
					Fields: []FieldConfig{
						{Code: "hazard_description", Label: "Hazard", FieldType: FieldTypeText, ValidationRules: required, OrderIndex: 0},
						{Code: "severity", Label: "Severity (1-5)", FieldType: FieldTypeNumber, ValidationRules: &ValidationRules{Required: true, Min: f64(1), Max: f64(5)}, OrderIndex: 1, Width: "third"},
						{Code: "likelihood", Label: "Likelihood (1-5)", FieldType: FieldTypeNumber, ValidationRules: &ValidationRules{Required: true, Min: f64(1), Max: f64(5)}, OrderIndex: 2, Width: "third"},
						{Code: "controls", Label: "Controls", FieldType: FieldTypeTextarea, ValidationRules: required, OrderIndex: 3},
						{Code: "hazard_photo", Label: "Photo", FieldType: FieldTypePhoto, OrderIndex: 4, Width: "third"},
					},
				},
			},
			Workflow: &WorkflowConfig{
				SubmitToRole:     "safety_manager",
				NotifyRoles:      []string{},
				CreatesTask:      true,
				SyncPriority:     2,
				RequiresApproval: true,
			},
		},
		{
			Code:                 "toolbox-talk",
			Name:                 "Toolbox Talk",
			Description:          "Short safety meeting record",
			CorElement:           9,
			Frequency:            "weekly",
			EstimatedTimeMinutes: 15,
			Icon:                 "users",
			Color:                "#388E3C",
			IsMandatory:          false,
			Sections: []SectionConfig{
				{
					Title:      "Talk Details",
					OrderIndex: 0,
					Fields: []FieldConfig{
						{Code: "talk_date", Label: "Date", FieldType: FieldTypeDate, ValidationRules: required, OrderIndex: 0, Width: "half"},
						{Code: "topic", Label: "Topic", FieldType: FieldTypeText, ValidationRules: required, OrderIndex: 1, Width: "half"},
						{Code: "attendees", Label: "Attendees", FieldType: FieldTypeWorkerSelect, ValidationRules: required, OrderIndex: 2},
						{Code: "notes", Label: "Discussion Notes", FieldType: FieldTypeTextarea, OrderIndex: 3},
						{Code: "presenter_signature", Label: "Presenter Signature", FieldType: FieldTypeSignature, ValidationRules: required, OrderIndex: 4, Width: "half"},
					},
				},
			},
			Workflow: &WorkflowConfig{
				SubmitToRole: "site_supervisor",
				NotifyRoles:  []string{},
				SyncPriority: 4,
			},
		},
		{
			Code:                 "site-inspection",
			Name:                 "Site Safety Inspection",
			Description:          "Walkthrough inspection of an active jobsite",
			CorElement:           7,
			Frequency:            "monthly",
			EstimatedTimeMinutes: 30,
			Icon:                 "clipboard-check",
			Color:                "#7B1FA2",
			IsMandatory:          true,
			Sections: []SectionConfig{
				{
					Title:      "Inspection Details",
					OrderIndex: 0,
					Fields: []FieldConfig{
						{Code: "jobsite", Label: "Jobsite", FieldType: FieldTypeJobsiteSelect, ValidationRules: required, OrderIndex: 0, Width: "half"},
						{Code: "inspection_date", Label: "Date", FieldType: FieldTypeDate, ValidationRules: required, OrderIndex: 1, Width: "half"},
						{Code: "location_gps", Label: "Location", FieldType: FieldTypeGPS, OrderIndex: 2, Width: "half"},
					},
				},
				{
					Title:        "Findings",
					OrderIndex:   1,
					IsRepeatable: true,
					Fields: []FieldConfig{
						{Code: "area", Label: "Area", FieldType: FieldTypeText, ValidationRules: required, OrderIndex: 0, Width: "half"},
						{Code: "condition", Label: "Condition", FieldType: FieldTypeRadio, Options: StringOptions("satisfactory", "needs_attention", "unsafe"), ValidationRules: required, OrderIndex: 1, Width: "half"},
						{Code: "finding_notes", Label: "Notes", FieldType: FieldTypeTextarea, OrderIndex: 2,
							ConditionalLogic: &ConditionalLogic{FieldCode: "condition", Operator: "not_equals", Value: "satisfactory"}},
						{Code: "finding_photo", Label: "Photo", FieldType: FieldTypePhoto, OrderIndex: 3, Width: "half"},
					},
				},
			},
			Workflow: &WorkflowConfig{
				SubmitToRole:     "safety_manager",
				NotifyRoles:      []string{"site_supervisor"},
				CreatesTask:      true,
				SyncPriority:     2,
				RequiresApproval: false,
			},
		},
		{
			Code:                 "pre-task-hazard",
			Name:                 "Pre-Task Hazard Assessment",
			Description:          "Field-level hazard check completed before starting a task",
			CorElement:           2,
			Frequency:            "daily",
			EstimatedTimeMinutes: 10,
			Icon:                 "shield",
			Color:                "#0288D1",
			IsMandatory:          true,
			Sections: []SectionConfig{
				{
					Title:      "Task",
					OrderIndex: 0,
					Fields: []FieldConfig{
						{Code: "task", Label: "Task Description", FieldType: FieldTypeText, ValidationRules: required, OrderIndex: 0},
						{Code: "crew", Label: "Crew Members", FieldType: FieldTypeWorkerSelect, ValidationRules: required, OrderIndex: 1},
						{Code: "ppe_confirmed", Label: "Required PPE on hand?", FieldType: FieldTypeCheckbox, Options: StringOptions("hard_hat", "safety_glasses", "gloves", "hi_vis", "boots"), ValidationRules: required, OrderIndex: 2},
						{Code: "new_hazards", Label: "Any new hazards identified?", FieldType: FieldTypeRadio, Options: StringOptions("yes", "no"), ValidationRules: required, OrderIndex: 3, Width: "half"},
						{Code: "hazard_detail", Label: "Describe the hazards", FieldType: FieldTypeTextarea, OrderIndex: 4,
							ConditionalLogic: &ConditionalLogic{FieldCode: "new_hazards", Operator: "equals", Value: "yes"}},
					},
				},
			},
			Workflow: &WorkflowConfig{
				SubmitToRole: "site_supervisor",
				NotifyRoles:  []string{},
				SyncPriority: 3,
			},
		},
		{
			Code:                 "equipment-inspection",
			Name:                 "Equipment Inspection",
			Description:          "Pre-use inspection of powered equipment",
			CorElement:           6,
			Frequency:            "daily",
			EstimatedTimeMinutes: 10,
			Icon:                 "truck",
			Color:                "#5D4037",
			IsMandatory:          true,
			Sections: []SectionConfig{
				{
					Title:      "Equipment",
					OrderIndex: 0,
					Fields: []FieldConfig{
						{Code: "equipment", Label: "Equipment Unit", FieldType: FieldTypeEquipmentSelect, ValidationRules: required, OrderIndex: 0, Width: "half"},
						{Code: "hours_reading", Label: "Hour Meter Reading", FieldType: FieldTypeNumber, ValidationRules: &ValidationRules{Min: f64(0)}, OrderIndex: 1, Width: "half"},
					},
				},
				{
					Title:      "Checklist",
					OrderIndex: 1,
					Fields: []FieldConfig{
						{Code: "fluids_ok", Label: "Fluid levels OK?", FieldType: FieldTypeRadio, Options: StringOptions("yes", "no", "n/a"), ValidationRules: required, OrderIndex: 0, Width: "third"},
						{Code: "brakes_ok", Label: "Brakes OK?", FieldType: FieldTypeRadio, Options: StringOptions("yes", "no", "n/a"), ValidationRules: required, OrderIndex: 1, Width: "third"},
						{Code: "lights_ok", Label: "Lights and alarms OK?", FieldType: FieldTypeRadio, Options: StringOptions("yes", "no", "n/a"), ValidationRules: required, OrderIndex: 2, Width: "third"},
						{Code: "defects", Label: "Defects Found", FieldType: FieldTypeTextarea, OrderIndex: 3},
						{Code: "operator_signature", Label: "Operator Signature", FieldType: FieldTypeSignature, ValidationRules: required, OrderIndex: 4, Width: "half"},
					},
				},
			},
			Workflow: &WorkflowConfig{
				SubmitToRole:     "maintenance_lead",
				NotifyRoles:      []string{"site_supervisor"},
				CreatesTask:      true,
				TaskTemplate:     map[string]interface{}{"title": "Repair reported defects"},
				SyncPriority:     2,
				RequiresApproval: false,
			},
		},
	}
}

func f64(v float64) *float64 { return &v }
