package domain

var (
	MessageSuccessAnnounceEndpoint = "image generation endpoint registered"
	MessageFailedAnnounceEndpoint  = "failed to register image generation endpoint"
)

type (
	// AnnounceEndpointRequest is sent by the remote image generation service
	// whenever it comes up on a new address.
	AnnounceEndpointRequest struct {
		EndpointURL string `json:"endpointUrl" validate:"required,url"`
	}
)
