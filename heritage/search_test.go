package heritage

import (
	"context"
	"errors"
	"net/url"
	"testing"
)

// stubFetcher is a transport double that records calls and replays a
// canned body.
type stubFetcher struct {
	calls        int
	lastEndpoint string
	lastParams   url.Values
	body         []byte
	err          error
}

func (s *stubFetcher) Fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	s.calls++
	s.lastEndpoint = endpoint
	s.lastParams = params
	if s.err != nil {
		return nil, s.err
	}
	return s.body, nil
}

func (s *stubFetcher) URL(endpoint string, params url.Values) string {
	u := "http://example.test/cha/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func newStubClient(stub *stubFetcher) *Client {
	return NewClient(WithFetcher(stub))
}

func TestSearchDefaults(t *testing.T) {
	stub := &stubFetcher{body: searchListFixture(0, 10, 1, 0)}
	c := newStubClient(stub)

	if _, err := c.Search().Do(context.Background()); err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if stub.lastEndpoint != "SearchKindOpenapiList.do" {
		t.Fatalf("endpoint = %q", stub.lastEndpoint)
	}
	if got := stub.lastParams.Get("pageUnit"); got != "10" {
		t.Fatalf("default pageUnit = %q, want 10", got)
	}
	if got := stub.lastParams.Get("pageIndex"); got != "1" {
		t.Fatalf("default pageIndex = %q, want 1", got)
	}
	if _, ok := stub.lastParams["ccbaCncl"]; ok {
		t.Fatalf("unset cancellation filter must omit ccbaCncl")
	}
}

func TestSearchParams(t *testing.T) {
	stub := &stubFetcher{body: searchListFixture(0, 15, 2, 0)}
	c := newStubClient(stub)

	_, err := c.Search().
		SetResultCount(15).
		SetPageIndex(2).
		SetType(HistoricSite).
		SetCity(Seoul).
		SetDistrict(SeoulJongno).
		SetCanceled(CanceledExclude).
		SetStartYear(1900).
		SetEndYear(1960).
		SetName("경복궁").
		Do(context.Background())
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}

	want := map[string]string{
		"pageUnit":   "15",
		"pageIndex":  "2",
		"ccbaKdcd":   "13",
		"ccbaCtcd":   "11",
		"ccbaLcto":   "11",
		"ccbaCncl":   "N",
		"stCcbaAsdt": "1900",
		"enCcbaAsdt": "1960",
		"ccbaMnm1":   "경복궁",
	}
	for key, value := range want {
		if got := stub.lastParams.Get(key); got != value {
			t.Fatalf("param %s = %q, want %q", key, got, value)
		}
	}
	if len(stub.lastParams) != len(want) {
		t.Fatalf("sent %d params, want %d: %v", len(stub.lastParams), len(want), stub.lastParams)
	}
}

func TestSearchURLRoundTrip(t *testing.T) {
	c := newStubClient(&stubFetcher{})

	s := c.Search().
		SetResultCount(15).
		SetType(NationalTreasure).
		SetCity(Jeonbuk).
		SetDistrict(JeonbukIksan).
		SetCanceled(CanceledOnly)

	raw, err := s.URL()
	if err != nil {
		t.Fatalf("URL error: %v", err)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("rendered URL does not parse: %v", err)
	}
	got := parsed.Query()
	want := s.params()
	if len(got) != len(want) {
		t.Fatalf("query has %d params, want %d", len(got), len(want))
	}
	for key := range want {
		if got.Get(key) != want.Get(key) {
			t.Fatalf("param %s = %q, want %q", key, got.Get(key), want.Get(key))
		}
	}
}

func TestSearchValidCityDistrictPairs(t *testing.T) {
	c := newStubClient(&stubFetcher{})

	for _, city := range Cities() {
		for _, d := range DistrictsOf(city) {
			s := c.Search().SetCity(city).SetDistrict(d)
			if err := s.validate(); err != nil {
				t.Fatalf("valid pair (%s, %s) rejected: %v", city, d, err)
			}
		}
	}
}

func TestSearchMismatchedCityDistrictPairs(t *testing.T) {
	c := newStubClient(&stubFetcher{})

	for _, city := range Cities() {
		for _, other := range Cities() {
			if other == city {
				continue
			}
			for _, d := range DistrictsOf(other) {
				s := c.Search().SetCity(city).SetDistrict(d)
				err := s.validate()
				var perr *InvalidParameterError
				if !errors.As(err, &perr) {
					t.Fatalf("mismatched pair (%s, %s) accepted", city, d)
				}
			}
		}
	}
}

func TestSearchValidation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Search) *Search
	}{
		{
			name:  "zero result count",
			setup: func(s *Search) *Search { return s.SetResultCount(0) },
		},
		{
			name:  "negative result count",
			setup: func(s *Search) *Search { return s.SetResultCount(-3) },
		},
		{
			name:  "zero page index",
			setup: func(s *Search) *Search { return s.SetPageIndex(0) },
		},
		{
			name:  "negative start year",
			setup: func(s *Search) *Search { return s.SetStartYear(-1) },
		},
		{
			name:  "start year after end year",
			setup: func(s *Search) *Search { return s.SetStartYear(1990).SetEndYear(1900) },
		},
		{
			name:  "district without city",
			setup: func(s *Search) *Search { return s.SetDistrict(SeoulJongno) },
		},
		{
			name:  "district of another city",
			setup: func(s *Search) *Search { return s.SetCity(Busan).SetDistrict(SeoulJongno) },
		},
		{
			name:  "unknown heritage type",
			setup: func(s *Search) *Search { return s.SetType(HeritageType("99")) },
		},
		{
			name:  "unknown city code",
			setup: func(s *Search) *Search { return s.SetCity(CityCode("XX")) },
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubFetcher{}
			c := newStubClient(stub)

			_, err := tc.setup(c.Search()).Do(context.Background())
			var perr *InvalidParameterError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *InvalidParameterError, got %v", err)
			}
			if stub.calls != 0 {
				t.Fatalf("invalid query reached the transport (%d calls)", stub.calls)
			}
		})
	}
}

func TestSearchTransportErrorPropagates(t *testing.T) {
	sentinel := errors.New("boom")
	stub := &stubFetcher{err: sentinel}
	c := newStubClient(stub)

	_, err := c.Search().Do(context.Background())
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}
