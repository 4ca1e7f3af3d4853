package heritage

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/joseonspace/kheritage-go/transport"
)

// Search accumulates query parameters for the heritage list endpoint.
// All validation happens before a request is issued; a mismatched
// city/district pair or non-positive paging never reaches the wire.
type Search struct {
	client transport.Fetcher

	resultCount  int
	pageIndex    int
	heritageType HeritageType
	startYear    int
	endYear      int
	name         string
	linkedNumber string
	city         CityCode
	district     District
	canceled     Canceled
}

// Search starts a heritage search with the API defaults: ten results,
// first page, no filters.
func (c *Client) Search() *Search {
	return &Search{
		client:      c.fetch,
		resultCount: 10,
		pageIndex:   1,
	}
}

// SetResultCount sets the page size (pageUnit).
func (s *Search) SetResultCount(n int) *Search {
	s.resultCount = n
	return s
}

// SetPageIndex sets the 1-based page to return.
func (s *Search) SetPageIndex(n int) *Search {
	s.pageIndex = n
	return s
}

// SetType filters by designation category.
func (s *Search) SetType(t HeritageType) *Search {
	s.heritageType = t
	return s
}

// SetStartYear filters by the earliest designation year, inclusive.
func (s *Search) SetStartYear(year int) *Search {
	s.startYear = year
	return s
}

// SetEndYear filters by the latest designation year, inclusive.
func (s *Search) SetEndYear(year int) *Search {
	s.endYear = year
	return s
}

// SetName filters by the Korean name of the heritage.
func (s *Search) SetName(name string) *Search {
	s.name = name
	return s
}

// SetLinkedNumber filters by the linked heritage number (ccbaCpno).
func (s *Search) SetLinkedNumber(number string) *Search {
	s.linkedNumber = number
	return s
}

// SetCity filters by province-level region.
func (s *Search) SetCity(city CityCode) *Search {
	s.city = city
	return s
}

// SetDistrict filters by district. The district's city must also be
// set via SetCity; the pair is checked before the request goes out.
func (s *Search) SetDistrict(d District) *Search {
	s.district = d
	return s
}

// SetCanceled filters by cancellation of the designation.
func (s *Search) SetCanceled(c Canceled) *Search {
	s.canceled = c
	return s
}

func (s *Search) validate() error {
	if s.resultCount < 1 {
		return &InvalidParameterError{Param: "pageUnit", Reason: "result count must be at least 1"}
	}
	if s.pageIndex < 1 {
		return &InvalidParameterError{Param: "pageIndex", Reason: "page index must be at least 1"}
	}
	if s.startYear < 0 {
		return &InvalidParameterError{Param: "stCcbaAsdt", Reason: "designation year must not be negative"}
	}
	if s.endYear < 0 {
		return &InvalidParameterError{Param: "enCcbaAsdt", Reason: "designation year must not be negative"}
	}
	if s.startYear > 0 && s.endYear > 0 && s.startYear > s.endYear {
		return &InvalidParameterError{
			Param:  "stCcbaAsdt",
			Reason: fmt.Sprintf("start year %d is after end year %d", s.startYear, s.endYear),
		}
	}
	if s.heritageType != "" {
		if _, ok := heritageTypeNames[s.heritageType]; !ok {
			return &InvalidParameterError{
				Param:  "ccbaKdcd",
				Reason: fmt.Sprintf("unknown heritage type code %q", string(s.heritageType)),
			}
		}
	}
	if s.city != "" {
		if _, ok := cityNames[s.city]; !ok {
			return &InvalidParameterError{
				Param:  "ccbaCtcd",
				Reason: fmt.Sprintf("unknown city code %q", string(s.city)),
			}
		}
	}
	if !s.district.IsZero() {
		if s.city == "" {
			return &InvalidParameterError{
				Param:  "ccbaLcto",
				Reason: fmt.Sprintf("district %s requires its city to be set", s.district),
			}
		}
		if s.district.City() != s.city {
			return &InvalidParameterError{
				Param:  "ccbaLcto",
				Reason: fmt.Sprintf("district %s does not belong to city %s", s.district, s.city),
			}
		}
	}
	return nil
}

func (s *Search) params() url.Values {
	params := url.Values{}
	params.Set("pageUnit", strconv.Itoa(s.resultCount))
	params.Set("pageIndex", strconv.Itoa(s.pageIndex))
	if s.heritageType != "" {
		params.Set("ccbaKdcd", string(s.heritageType))
	}
	if s.startYear > 0 {
		params.Set("stCcbaAsdt", strconv.Itoa(s.startYear))
	}
	if s.endYear > 0 {
		params.Set("enCcbaAsdt", strconv.Itoa(s.endYear))
	}
	if s.name != "" {
		params.Set("ccbaMnm1", s.name)
	}
	if s.linkedNumber != "" {
		params.Set("ccbaCpno", s.linkedNumber)
	}
	if s.city != "" {
		params.Set("ccbaCtcd", string(s.city))
	}
	if !s.district.IsZero() {
		params.Set("ccbaLcto", s.district.Code())
	}
	if v, ok := s.canceled.wire(); ok {
		params.Set("ccbaCncl", v)
	}
	return params
}

// URL renders the request URL without issuing it.
func (s *Search) URL() (string, error) {
	if err := s.validate(); err != nil {
		return "", err
	}
	return s.client.URL(endpointSearch, s.params()), nil
}

// Do validates the parameters, performs one request and parses the
// search-list response.
func (s *Search) Do(ctx context.Context) (*SearchResult, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	body, err := s.client.Fetch(ctx, endpointSearch, s.params())
	if err != nil {
		return nil, fmt.Errorf("heritage search: %w", err)
	}
	return parseSearchList(body)
}
