// ABOUTME: Service implementing the public bridge operations.
// ABOUTME: Availability, authorization, sample read, and sample write over a native Store.
package bridge

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/openhealth/healthbridge/internal/models"
	"github.com/openhealth/healthbridge/internal/native"
	"github.com/openhealth/healthbridge/internal/normalize"
	"github.com/openhealth/healthbridge/internal/reader"
)

// DefaultReadLimit applies when a read request leaves limit unset.
const DefaultReadLimit = 100

// Service translates the typed operation surface into native store
// calls. It holds the single process-wide pending-authorization slot;
// everything else is stateless per call.
type Service struct {
	store native.Store
	now   func() time.Time

	mu            sync.Mutex
	promptPending bool
}

// NewService creates a Service over the given native store.
func NewService(store native.Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// AvailabilityResult is the isAvailable response shape.
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Platform  string `json:"platform"`
	Reason    string `json:"reason,omitempty"`
}

// IsAvailable reports whether the native health store can be used.
func (s *Service) IsAvailable(ctx context.Context) AvailabilityResult {
	available, reason := s.store.Available(ctx)
	res := AvailabilityResult{
		Available: available,
		Platform:  s.store.Platform(),
	}
	if !available {
		res.Reason = reason
	}
	return res
}

// AuthorizationRequest names the data types an authorization call
// covers, split by direction.
type AuthorizationRequest struct {
	Read  []string `json:"read"`
	Write []string `json:"write"`
}

// resolvedAuthRequest is an AuthorizationRequest with every name
// resolved against the catalog.
type resolvedAuthRequest struct {
	read  []models.DataType
	write []models.DataType
}

func resolveAuthRequest(req AuthorizationRequest) (*resolvedAuthRequest, error) {
	out := &resolvedAuthRequest{}
	for _, name := range req.Read {
		dt, err := models.Resolve(name)
		if err != nil {
			return nil, err
		}
		out.read = append(out.read, dt)
	}
	for _, name := range req.Write {
		dt, err := models.Resolve(name)
		if err != nil {
			return nil, err
		}
		out.write = append(out.write, dt)
	}
	return out, nil
}

// tokens returns the union of platform permission tokens the request
// requires, deduplicated, in request order.
func (r *resolvedAuthRequest) tokens() []string {
	seen := make(map[string]bool)
	var out []string
	for _, dt := range r.read {
		if tok := dt.Info().ReadPermission; !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	for _, dt := range r.write {
		if tok := dt.Info().WritePermission; !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	return out
}

// status partitions the requested types against a live grant set.
func (r *resolvedAuthRequest) status(granted map[string]bool) *models.AuthorizationStatus {
	st := models.NewAuthorizationStatus()
	for _, dt := range r.read {
		if granted[dt.Info().ReadPermission] {
			st.ReadAuthorized = append(st.ReadAuthorized, string(dt))
		} else {
			st.ReadDenied = append(st.ReadDenied, string(dt))
		}
	}
	for _, dt := range r.write {
		if granted[dt.Info().WritePermission] {
			st.WriteAuthorized = append(st.WriteAuthorized, string(dt))
		} else {
			st.WriteDenied = append(st.WriteDenied, string(dt))
		}
	}
	return st
}

// wrapNative maps a native store failure onto the bridge taxonomy:
// unavailability keeps its own error kind, everything else becomes a
// NativeOperationError carrying the original cause.
func wrapNative(op string, err error) error {
	var unavail *native.UnavailableError
	if errors.As(err, &unavail) {
		return &PlatformUnavailableError{Reason: unavail.Reason}
	}
	return &NativeOperationError{Op: op, Err: err}
}

// CheckAuthorization reports the current grant state for the requested
// types. It never prompts.
func (s *Service) CheckAuthorization(ctx context.Context, req AuthorizationRequest) (*models.AuthorizationStatus, error) {
	resolved, err := resolveAuthRequest(req)
	if err != nil {
		return nil, err
	}

	granted, err := s.store.GrantedPermissions(ctx)
	if err != nil {
		return nil, wrapNative("permission query", err)
	}
	return resolved.status(granted), nil
}

// RequestAuthorization prompts for any permissions the request needs
// that are not already granted. An empty request, or one whose tokens
// are all granted, resolves immediately without a prompt. At most one
// prompt may be in flight process-wide; a second concurrent request is
// rejected with ErrAuthorizationPromptInFlight. The returned status is
// always recomputed from the platform's live grant set after the
// prompt resolves, never taken from the prompt result itself.
func (s *Service) RequestAuthorization(ctx context.Context, req AuthorizationRequest) (*models.AuthorizationStatus, error) {
	resolved, err := resolveAuthRequest(req)
	if err != nil {
		return nil, err
	}

	tokens := resolved.tokens()

	granted, err := s.store.GrantedPermissions(ctx)
	if err != nil {
		return nil, wrapNative("permission query", err)
	}
	if len(tokens) == 0 || allGranted(tokens, granted) {
		return resolved.status(granted), nil
	}

	if err := s.acquirePromptSlot(); err != nil {
		return nil, err
	}
	defer s.releasePromptSlot()

	// One prompt for the full unioned set, not just the missing tokens.
	if err := s.store.RequestPermissions(ctx, tokens); err != nil {
		switch {
		case errors.Is(err, native.ErrNoUIContext):
			return nil, ErrNoActiveUIContext
		default:
			// Cancellation is a top-level failure of the whole
			// request, not an all-denied status.
			return nil, wrapNative("permission prompt", err)
		}
	}

	granted, err = s.store.GrantedPermissions(ctx)
	if err != nil {
		return nil, wrapNative("permission query", err)
	}
	return resolved.status(granted), nil
}

func allGranted(tokens []string, granted map[string]bool) bool {
	for _, tok := range tokens {
		if !granted[tok] {
			return false
		}
	}
	return true
}

// acquirePromptSlot claims the single pending-authorization slot.
func (s *Service) acquirePromptSlot() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.promptPending {
		return ErrAuthorizationPromptInFlight
	}
	s.promptPending = true
	return nil
}

func (s *Service) releasePromptSlot() {
	s.mu.Lock()
	s.promptPending = false
	s.mu.Unlock()
}

// ReadRequest is the readSamples input shape. Limit semantics: unset
// defaults to DefaultReadLimit, zero or negative means unbounded.
type ReadRequest struct {
	DataType  string `json:"dataType"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Limit     *int   `json:"limit,omitempty"`
	Ascending bool   `json:"ascending,omitempty"`
}

// ReadResult is the readSamples output shape.
type ReadResult struct {
	Samples []models.SampleJSON `json:"samples"`
}

// ReadSamples fetches and normalizes samples of one data type. All
// validation happens before any native call.
func (s *Service) ReadSamples(ctx context.Context, req ReadRequest) (*ReadResult, error) {
	dt, err := models.Resolve(req.DataType)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start, err := parseDate(req.StartDate, now.Add(-24*time.Hour))
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate, now)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	limit := DefaultReadLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	samples, err := reader.ReadAll(ctx, s.store, dt, start, end, limit, req.Ascending)
	if err != nil {
		return nil, wrapNative("record read", err)
	}

	out := &ReadResult{Samples: make([]models.SampleJSON, 0, len(samples))}
	for _, sample := range samples {
		out.Samples = append(out.Samples, sample.JSON())
	}
	return out, nil
}

// SaveRequest is the saveSample input shape. Unit, when present, must
// equal the data type's canonical unit; units are never converted.
type SaveRequest struct {
	DataType  string         `json:"dataType"`
	Value     float64        `json:"value"`
	Unit      string         `json:"unit,omitempty"`
	StartDate string         `json:"startDate,omitempty"`
	EndDate   string         `json:"endDate,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// SaveSample validates and writes exactly one sample to the native
// store. Validation order: data type, unit, dates, range — all before
// any native call.
func (s *Service) SaveSample(ctx context.Context, req SaveRequest) error {
	dt, err := models.Resolve(req.DataType)
	if err != nil {
		return err
	}
	if err := normalize.ValidateUnit(dt, req.Unit); err != nil {
		return err
	}

	start, err := parseDate(req.StartDate, s.now())
	if err != nil {
		return err
	}
	end, err := parseDate(req.EndDate, start)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return ErrInvalidDateRange
	}

	rec := normalize.BuildRecord(dt, req.Value, start, end, req.Metadata)
	if err := s.store.InsertRecord(ctx, rec); err != nil {
		return wrapNative("record insert", err)
	}
	return nil
}

// parseDate parses an ISO 8601 instant, returning fallback when the
// input is empty. Malformed input is a parse error, never ignored.
func parseDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	return time.Parse(time.RFC3339, value)
}
