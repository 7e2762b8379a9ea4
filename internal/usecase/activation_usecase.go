package usecase

import (
	"context"
)

// CountryServices describes the rentable capacity of one country as the
// Hub expects it: operator name to service name to available count.
type CountryServices struct {
	Country     string                    `json:"country"`
	OperatorMap map[string]map[string]int `json:"operatorMap"`
}

// NumberQuery narrows a number request. Empty Country and Operator mean
// any; ExceptionPrefixes lists phone prefixes the Hub refuses.
type NumberQuery struct {
	Service           string
	Country           string
	Operator          string
	ExceptionPrefixes []string
}

// NumberAssignment is the result of a successful number request.
type NumberAssignment struct {
	ActivationID int64  `json:"activationId"`
	Number       string `json:"number"`
}

// ActivationUsecase drives the Hub-facing activation lifecycle. The Hub
// owns every status decision; this side only validates structure,
// persists and binds modems.
type ActivationUsecase interface {
	// GetServices reports available numbers per country, operator and service.
	GetServices(ctx context.Context) ([]CountryServices, error)

	// GetNumber leases one ready modem for a service, optionally narrowed
	// to a country and operator. Phones whose prefix appears in
	// exceptionPrefixes are skipped. Returns ErrNoCapacity when nothing
	// can be handed out.
	GetNumber(ctx context.Context, query NumberQuery) (*NumberAssignment, error)

	// FinishActivation applies a Hub-instructed status transition. The call
	// is idempotent: replaying a terminal status succeeds without side effects.
	FinishActivation(ctx context.Context, activationID int64, status int) error
}
