package models

// ServiceType indicates which side of a typical stack a service occupies.
type ServiceType string

const (
	ServiceTypeFrontend ServiceType = "frontend"
	ServiceTypeBackend  ServiceType = "backend"
)

// ServiceStatus is the local belief about whether a service's process is
// active. Toggling it never starts or stops a real process.
type ServiceStatus string

const (
	StatusRunning ServiceStatus = "running"
	StatusStopped ServiceStatus = "stopped"

	// StatusError is only ever set from an external signal; nothing in
	// warden produces it.
	StatusError ServiceStatus = "error"
)

// Service is one runnable unit inside a project.
type Service struct {
	// ID is the opaque unique identifier, assigned at creation.
	ID string

	// Name is the service display name (e.g. "frontend", "api").
	Name string

	Type  ServiceType
	Stack Stack

	// Path is the absolute path where the service's code lives.
	Path string

	// URL is the local hostname used to open the service (e.g. "my-app.test").
	// It is not validated for DNS resolvability.
	URL string

	// Port is the local port, conventionally 1024-65535.
	Port int

	// Command starts the service; warden stores it but never executes it.
	Command string

	Status ServiceStatus
}

// CoerceServiceType maps an arbitrary string onto a valid ServiceType,
// defaulting to backend.
func CoerceServiceType(raw string) ServiceType {
	if ServiceType(raw) == ServiceTypeFrontend {
		return ServiceTypeFrontend
	}
	return ServiceTypeBackend
}

// CoerceStatus maps an arbitrary string onto a valid ServiceStatus,
// defaulting to stopped.
func CoerceStatus(raw string) ServiceStatus {
	switch ServiceStatus(raw) {
	case StatusRunning:
		return StatusRunning
	case StatusError:
		return StatusError
	default:
		return StatusStopped
	}
}

// CategoryToServiceType maps a detected service category onto the internal
// service type. Frontend-ish categories (frontend, mobile) become frontend;
// everything else (backend, api, worker, docker, ...) becomes backend.
func CategoryToServiceType(category string) ServiceType {
	if category == "frontend" || category == "mobile" {
		return ServiceTypeFrontend
	}
	return ServiceTypeBackend
}
