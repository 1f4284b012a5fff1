package services

// EventPublisher publishes domain events to the message broker. Publishing
// is best effort everywhere: a nil publisher or a failed publish is logged
// and never fails the request that triggered it.
type EventPublisher interface {
	Publish(event string, payload map[string]interface{}) error
}

// Event names published by the services.
const (
	EventProductCreated = "product.created"
	EventEnquiryCreated = "enquiry.created"
)
