package module

import "gitstats/internal/services/api/repositories/domain"

// Ports exposes the aggregation surface for cross-module lookups
type Ports struct {
	Stats domain.ServicePort
}
