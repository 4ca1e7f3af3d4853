package heritage

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/joseonspace/kheritage-go/transport"
)

// EventSearch queries the heritage event calendar for one month.
type EventSearch struct {
	client transport.Fetcher

	year      int
	month     int
	word      string
	eventType EventType
}

// Events starts an event search for the given year and month.
func (c *Client) Events(year, month int) *EventSearch {
	return &EventSearch{client: c.fetch, year: year, month: month}
}

// SetSearchWord filters events by a free-text word.
func (e *EventSearch) SetSearchWord(word string) *EventSearch {
	e.word = word
	return e
}

// SetType filters events by program category.
func (e *EventSearch) SetType(t EventType) *EventSearch {
	e.eventType = t
	return e
}

func (e *EventSearch) validate() error {
	if e.month < 1 || e.month > 12 {
		return &InvalidParameterError{
			Param:  "searchMonth",
			Reason: fmt.Sprintf("month %d is out of range 1-12", e.month),
		}
	}
	if e.year < 1000 || e.year > 9999 {
		return &InvalidParameterError{
			Param:  "searchYear",
			Reason: fmt.Sprintf("year %d is not a four-digit year", e.year),
		}
	}
	if e.eventType != "" {
		if _, ok := eventTypeNames[e.eventType]; !ok {
			return &InvalidParameterError{
				Param:  "siteCode",
				Reason: fmt.Sprintf("unknown event type code %q", string(e.eventType)),
			}
		}
	}
	return nil
}

func (e *EventSearch) params() url.Values {
	params := url.Values{}
	params.Set("searchYear", strconv.Itoa(e.year))
	params.Set("searchMonth", strconv.Itoa(e.month))
	if e.word != "" {
		params.Set("searchWrd", e.word)
	}
	if e.eventType != "" {
		params.Set("siteCode", string(e.eventType))
	}
	return params
}

// URL renders the request URL without issuing it.
func (e *EventSearch) URL() (string, error) {
	if err := e.validate(); err != nil {
		return "", err
	}
	return e.client.URL(endpointEvents, e.params()), nil
}

// Do validates the parameters, performs one request and parses the
// event-list response into events in response order.
func (e *EventSearch) Do(ctx context.Context) ([]Event, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	body, err := e.client.Fetch(ctx, endpointEvents, e.params())
	if err != nil {
		return nil, fmt.Errorf("event search: %w", err)
	}
	return parseEventList(body)
}
