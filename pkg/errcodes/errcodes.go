package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	InvalidAirportCode  failure.ErrorCode = "InvalidAirportCode"
	InvalidSearchDate   failure.ErrorCode = "InvalidSearchDate"
	InvalidDestination  failure.ErrorCode = "InvalidDestination"
	OfferMilesMissing   failure.ErrorCode = "OfferMilesMissing"
	SearchUpstreamError failure.ErrorCode = "SearchUpstreamError"
	NotifyDeliveryError failure.ErrorCode = "NotifyDeliveryError"
)
