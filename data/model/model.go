package model

type CollectionName string

const (
	CollectionNameUsers        CollectionName = "users"
	CollectionNameEmergencies  CollectionName = "emergencies"
	CollectionNameMessages     CollectionName = "messages"
	CollectionNameAvailability CollectionName = "emp_availability"
)
