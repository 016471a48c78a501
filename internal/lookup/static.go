package lookup

import "safety-forms-api/internal/formbuilder"

// The field-type and frequency catalogs are compiled in: clients only need
// them to build template documents, and they change with releases, not data.

func (ls *LookupService) GetFieldTypes() []FieldTypeInfo {
	return []FieldTypeInfo{
		{Type: formbuilder.FieldTypeText, Label: "Text", RequiresOptions: false},
		{Type: formbuilder.FieldTypeTextarea, Label: "Text area", RequiresOptions: false},
		{Type: formbuilder.FieldTypeNumber, Label: "Number", RequiresOptions: false},
		{Type: formbuilder.FieldTypeDate, Label: "Date", RequiresOptions: false},
		{Type: formbuilder.FieldTypeTime, Label: "Time", RequiresOptions: false},
		{Type: formbuilder.FieldTypeDropdown, Label: "Dropdown", RequiresOptions: true},
		{Type: formbuilder.FieldTypeRadio, Label: "Radio buttons", RequiresOptions: true},
		{Type: formbuilder.FieldTypeCheckbox, Label: "Checkboxes", RequiresOptions: true},
		{Type: formbuilder.FieldTypeMultiselect, Label: "Multi-select", RequiresOptions: true},
		{Type: formbuilder.FieldTypeSignature, Label: "Signature", RequiresOptions: false},
		{Type: formbuilder.FieldTypePhoto, Label: "Photo", RequiresOptions: false},
		{Type: formbuilder.FieldTypeFile, Label: "File attachment", RequiresOptions: false},
		{Type: formbuilder.FieldTypeGPS, Label: "GPS location", RequiresOptions: false},
		{Type: formbuilder.FieldTypeWorkerSelect, Label: "Worker picker", RequiresOptions: false},
		{Type: formbuilder.FieldTypeJobsiteSelect, Label: "Jobsite picker", RequiresOptions: false},
		{Type: formbuilder.FieldTypeEquipmentSelect, Label: "Equipment picker", RequiresOptions: false},
	}
}

func (ls *LookupService) GetFrequencies() []FrequencyInfo {
	return []FrequencyInfo{
		{Code: "daily", Label: "Daily"},
		{Code: "weekly", Label: "Weekly"},
		{Code: "monthly", Label: "Monthly"},
		{Code: "quarterly", Label: "Quarterly"},
		{Code: "annual", Label: "Annual"},
		{Code: "as_needed", Label: "As needed"},
	}
}

func corElementSeeds() []CorElement {
	return []CorElement{
		{Number: 2, Name: "Hazard Assessment", Description: "Identification and assessment of workplace hazards."},
		{Number: 3, Name: "Safe Work Practices", Description: "Documented safe work practices for hazardous tasks."},
		{Number: 4, Name: "Safe Job Procedures", Description: "Step by step procedures for critical jobs."},
		{Number: 5, Name: "Company Rules", Description: "Written rules and enforcement records."},
		{Number: 6, Name: "Personal Protective Equipment", Description: "PPE selection, use and maintenance."},
		{Number: 7, Name: "Preventive Maintenance", Description: "Equipment inspection and maintenance program."},
		{Number: 8, Name: "Training and Communication", Description: "Worker orientation, training and safety communication."},
		{Number: 9, Name: "Workplace Inspections", Description: "Scheduled inspections of sites and facilities."},
		{Number: 10, Name: "Incident Investigation", Description: "Reporting and investigation of incidents and near misses."},
		{Number: 11, Name: "Emergency Preparedness", Description: "Emergency response plans and drills."},
		{Number: 12, Name: "Statistics and Records", Description: "Collection and review of safety statistics."},
		{Number: 13, Name: "Legislation", Description: "Access to and compliance with applicable legislation."},
		{Number: 14, Name: "Occupational Health", Description: "Occupational health hazards and controls."},
	}
}
