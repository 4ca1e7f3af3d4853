package heritage

import (
	"strings"
	"testing"
)

func TestDistrictsBelongToTheirCity(t *testing.T) {
	total := 0
	for _, city := range Cities() {
		for _, d := range DistrictsOf(city) {
			total++
			if d.City() != city {
				t.Fatalf("district %s registered under city %s", d, city)
			}
			if d.Code() == "" {
				t.Fatalf("district %s has empty code", d)
			}
			if d.IsZero() {
				t.Fatalf("registered district compares equal to the zero District")
			}
		}
	}
	if total < 200 {
		t.Fatalf("expected the full district tables, got %d entries", total)
	}
}

func TestDistrictsOfReturnsCopy(t *testing.T) {
	a := DistrictsOf(Jeju)
	if len(a) == 0 {
		t.Fatalf("no districts for Jeju")
	}
	a[0] = District{}
	b := DistrictsOf(Jeju)
	if b[0].IsZero() {
		t.Fatalf("mutating the returned slice leaked into the table")
	}
}

func TestDistrictCodesUniquePerCity(t *testing.T) {
	for _, city := range Cities() {
		seen := map[string]bool{}
		for _, d := range DistrictsOf(city) {
			if seen[d.Code()] {
				t.Fatalf("duplicate district code %s in %s", d.Code(), city)
			}
			seen[d.Code()] = true
		}
	}
}

func TestCanceledWire(t *testing.T) {
	tests := []struct {
		name     string
		canceled Canceled
		want     string
		send     bool
	}{
		{name: "either omits the parameter", canceled: CanceledEither, send: false},
		{name: "only sends Y", canceled: CanceledOnly, want: "Y", send: true},
		{name: "exclude sends N", canceled: CanceledExclude, want: "N", send: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, send := tc.canceled.wire()
			if send != tc.send || got != tc.want {
				t.Fatalf("wire() = (%q, %v), want (%q, %v)", got, send, tc.want, tc.send)
			}
		})
	}
}

func TestCodeStrings(t *testing.T) {
	if got := HistoricSite.String(); got != "사적 (13)" {
		t.Fatalf("HeritageType String = %q", got)
	}
	if got := Seoul.String(); got != "서울 (11)" {
		t.Fatalf("CityCode String = %q", got)
	}
	if got := NighttimeHeritage.String(); got != "문화재야행 (01)" {
		t.Fatalf("EventType String = %q", got)
	}
	if got := SeoulJongno.String(); !strings.Contains(got, "종로구") {
		t.Fatalf("District String = %q, want it to name the district", got)
	}
	var unset District
	if got := unset.String(); got != "unset district" {
		t.Fatalf("zero District String = %q", got)
	}
}
