package entity

import "strings"

//nolint:gochecknoglobals
var (
	alertTypeSeeds = []CatalogSeed{
		{Name: "health_alert", Description: "Health alert"},
		{Name: "medication_alert", Description: "Medication alert"},
		{Name: "appointment_alert", Description: "Appointment alert"},
		{Name: "security_alert", Description: "Security alert"},
		{Name: "fall_detected", Description: "Fall detected"},
		{Name: "wandering_alert", Description: "Wandering alert"},
		{Name: "environmental_alert", Description: "Environmental alert"},
		{Name: "temperature_alert", Description: "Temperature alert"},
		{Name: "humidity_alert", Description: "Humidity alert"},
		{Name: "device_alert", Description: "Device alert"},
		{Name: "battery_low", Description: "Battery low"},
		{Name: "connection_lost", Description: "Connection lost"},
		{Name: "location_alert", Description: "Location alert"},
		{Name: "geofence_alert", Description: "Geofence alert"},
		{Name: "system_alert", Description: "System alert"},
		{Name: "maintenance_alert", Description: "Maintenance alert"},
		{Name: "emergency_alert", Description: "Emergency alert"},
		{Name: "panic_alert", Description: "Panic alert"},
		{Name: "no_movement", Description: "No movement detected"},
		{Name: "audit_test", Description: "Audit test alert"},
	}

	eventTypeSeeds = describe(
		"sensor_event", "system_event", "user_action", "alert_event", "device_event", "location_event",
		"health_event", "environmental_event", "security_event", "maintenance_event", "error_event",
	)

	deviceTypeSeeds = describe(
		"sensor", "tracker", "camera", "smartphone", "tablet", "wearable", "medical_device",
		"environmental_sensor", "door_sensor", "motion_sensor", "temperature_sensor",
		"heart_rate_monitor", "fall_detector", "gps_tracker",
	)

	reminderTypeSeeds = describe(
		"medication", "appointment", "task", "exercise", "meal", "hygiene", "social",
		"medical_checkup", "therapy", "maintenance",
	)

	careTypeSeeds = []CatalogSeed{
		{Name: "self", Description: "Self care"},
		{Name: "delegated", Description: "Care delegated to a representative"},
	}

	caregiverAssignmentTypeSeeds = []CatalogSeed{
		{Name: "family", Description: "Family member"},
		{Name: "professional", Description: "Hired professional caregiver"},
		{Name: "volunteer", Description: "Volunteer caregiver"},
		{Name: "institution", Description: "Institution caregiver"},
		{Name: "neighbor", Description: "Neighbor or close friend"},
		{Name: "nurse", Description: "Professional nurse"},
		{Name: "therapist", Description: "Specialised therapist"},
	}

	statusTypeSeeds = []CatalogSeed{
		{Name: "active", Description: "Alert active", Category: "alert_status"},
		{Name: "resolved", Description: "Alert resolved", Category: "alert_status"},
		{Name: "acknowledged", Description: "Alert acknowledged", Category: "alert_status"},
		{Name: "pending", Description: "Payment pending", Category: "billing_status"},
		{Name: "paid", Description: "Paid", Category: "billing_status"},
		{Name: "overdue", Description: "Overdue", Category: "billing_status"},
		{Name: "cancelled", Description: "Cancelled", Category: "billing_status"},
		{Name: "online", Description: "Device online", Category: "device_status"},
		{Name: "offline", Description: "Device offline", Category: "device_status"},
		{Name: "maintenance", Description: "Under maintenance", Category: "device_status"},
		{Name: "error", Description: "Device error", Category: "device_status"},
		{Name: "active", Description: "User active", Category: "user_status"},
		{Name: "inactive", Description: "User inactive", Category: "user_status"},
		{Name: "suspended", Description: "User suspended", Category: "user_status"},
		{Name: "assigned", Description: "Assignment active", Category: "assignment_status"},
		{Name: "completed", Description: "Assignment completed", Category: "assignment_status"},
		{Name: "cancelled", Description: "Assignment cancelled", Category: "assignment_status"},
		{Name: "pending", Description: "Reminder pending", Category: "reminder_status"},
		{Name: "completed", Description: "Reminder completed", Category: "reminder_status"},
		{Name: "overdue", Description: "Reminder overdue", Category: "reminder_status"},
		{Name: "active", Description: "Package active", Category: "package_status"},
		{Name: "expired", Description: "Package expired", Category: "package_status"},
		{Name: "cancelled", Description: "Package cancelled", Category: "package_status"},
	}
)

// describe builds seeds whose description is the name in sentence case.
func describe(names ...string) []CatalogSeed {
	seeds := make([]CatalogSeed, 0, len(names))
	for _, name := range names {
		words := strings.ReplaceAll(name, "_", " ")
		seeds = append(seeds, CatalogSeed{
			Name:        name,
			Description: strings.ToUpper(words[:1]) + words[1:],
		})
	}

	return seeds
}
