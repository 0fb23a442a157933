package models

// PageMeta describes one page of a filtered listing.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// PaginatedApartments is the response body of the listing endpoint.
type PaginatedApartments struct {
	Data []Apartment `json:"data"`
	Meta PageMeta    `json:"meta"`
}
