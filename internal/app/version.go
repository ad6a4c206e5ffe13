package app

// Service names, also used as the config file prefix and the OTel meter name.
const (
	TutorServiceName = "tutor-service"
	TutorWebName     = "tutor-web"
)

// Build-time injection variables
// These are set via -ldflags during build:
//
//	go build -ldflags="-X 'tutorhub/internal/app.Version=1.0.0'" ./cmd/tutor-service
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)
