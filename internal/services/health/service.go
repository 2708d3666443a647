package health

// Service encapsulates health-related checks.
type Service struct {
	ServiceName string
	Model       string
}

// NewService constructs a new health service.
func NewService(serviceName, model string) *Service {
	return &Service{ServiceName: serviceName, Model: model}
}

// Status returns the liveness payload.
func (s *Service) Status() map[string]string {
	return map[string]string{
		"status":  "UP",
		"service": s.ServiceName,
		"model":   s.Model,
	}
}
