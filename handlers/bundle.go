package handlers

// HandlerBundle groups every endpoint handler the router mounts. main.go
// builds it once all services are wired.
type HandlerBundle struct {
	Bookings     *BookingHandler
	Agents       *AgentHandler
	Users        *UserHandler
	Plans        *PlanHandler
	Verification *VerificationHandler
	Interests    *InterestHandler
	Content      *ContentHandler
}
