package event

const registrationEventName = "user_registration_events"

type RegistrationEvent struct {
	Uid int64 `json:"uid"`
}
