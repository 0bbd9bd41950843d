package server

import (
	"fmt"
	"net/http"
	"regexp"

	"git.appkode.ru/pub/go/failure"

	"miles_watch/internal/domain/entity"
	"miles_watch/pkg/errcodes"
	"miles_watch/pkg/httpx/reply"
	"miles_watch/pkg/httpx/req"
	"miles_watch/pkg/rest"
)

var airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

type scanner interface {
	Scanning() bool
	LastReport() *entity.Report
	Destinations() []string
	AddDestination(code string) bool
	RemoveDestination(code string) bool
	TriggerScan() bool
}

type StatusServer struct {
	scanner      scanner
	origin       string
	milesCeiling int
}

func NewStatusServer(scanner scanner, origin string, milesCeiling int) StatusServer {
	return StatusServer{
		scanner:      scanner,
		origin:       origin,
		milesCeiling: milesCeiling,
	}
}

func (s StatusServer) getV1Status(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	status := rest.Status{
		Origin:       s.origin,
		Destinations: s.scanner.Destinations(),
		MilesCeiling: s.milesCeiling,
		Scanning:     s.scanner.Scanning(),
	}

	if last := s.scanner.LastReport(); last != nil {
		status.LastCycleID = last.CycleID
	}

	reply.JSON(ctx, w, http.StatusOK, status)

	return nil
}

func (s StatusServer) getV1Report(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	report := s.scanner.LastReport()
	if report == nil {
		return failure.NewNotFoundError(
			"no completed scan cycle yet",
			failure.WithCode(errcodes.NotFound),
		)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTCycleReport(report))

	return nil
}

func (s StatusServer) postV1Scan(w http.ResponseWriter, _ *http.Request) error {
	// A pending trigger already guarantees the effect the caller wants.
	s.scanner.TriggerScan()

	reply.Accepted(w)

	return nil
}

func (s StatusServer) postV1Destination(w http.ResponseWriter, r *http.Request) error {
	var request rest.Destination

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if !s.scanner.AddDestination(request.Code) {
		return failure.NewInvalidArgumentError(
			"destination already tracked",
			failure.WithCode(errcodes.InvalidDestination),
		)
	}

	reply.OK(w)

	return nil
}

func (s StatusServer) deleteV1Destination(w http.ResponseWriter, r *http.Request) error {
	code := r.PathValue("code")

	if !airportCodePattern.MatchString(code) {
		return failure.NewInvalidArgumentError(
			"airport code must be three uppercase letters",
			failure.WithCode(errcodes.InvalidAirportCode),
		)
	}

	if !s.scanner.RemoveDestination(code) {
		return failure.NewNotFoundError(
			"destination is not tracked",
			failure.WithCode(errcodes.NotFound),
		)
	}

	reply.OK(w)

	return nil
}
