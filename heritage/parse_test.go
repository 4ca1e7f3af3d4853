package heritage

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// searchListFixture renders a search-list body with n item nodes.
func searchListFixture(total, unit, index, n int) []byte {
	var b strings.Builder
	b.WriteString("<result>")
	fmt.Fprintf(&b, "<totalCnt>%d</totalCnt><pageUnit>%d</pageUnit><pageIndex>%d</pageIndex>", total, unit, index)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, `<item>
			<sn>%d</sn>
			<no>%d</no>
			<ccmaName>사적</ccmaName>
			<ccbaMnm1>유적 제%d호</ccbaMnm1>
			<ccbaMnm2>遺蹟</ccbaMnm2>
			<ccbaCtcdNm>서울</ccbaCtcdNm>
			<ccsiName>종로구</ccsiName>
			<ccbaAdmin>종로구청</ccbaAdmin>
			<ccbaKdcd>13</ccbaKdcd>
			<ccbaCtcd>11</ccbaCtcd>
			<ccbaAsno>%08d</ccbaAsno>
			<ccbaCncl>N</ccbaCncl>
			<ccbaCpno>1331100%06d</ccbaCpno>
			<longitude>126.97</longitude>
			<latitude>37.57</latitude>
		</item>`, i, i, i, i, i)
	}
	b.WriteString("</result>")
	return []byte(b.String())
}

func TestParseSearchList(t *testing.T) {
	result, err := parseSearchList(searchListFixture(42, 15, 1, 15))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if result.Hits != 42 {
		t.Fatalf("Hits = %d, want 42", result.Hits)
	}
	if result.Limit != 15 {
		t.Fatalf("Limit = %d, want 15", result.Limit)
	}
	if result.Offset != 1 {
		t.Fatalf("Offset = %d, want 1", result.Offset)
	}
	if len(result.Items) != 15 {
		t.Fatalf("len(Items) = %d, want 15", len(result.Items))
	}
	if len(result.Items) > result.Limit {
		t.Fatalf("len(Items) %d exceeds Limit %d", len(result.Items), result.Limit)
	}

	first := result.Items[0]
	if first.Name != "유적 제1호" {
		t.Fatalf("Name = %q", first.Name)
	}
	if first.TypeCode != "13" || first.TypeName != "사적" {
		t.Fatalf("type = %q/%q", first.TypeCode, first.TypeName)
	}
	if first.CityCode != "11" || first.DistrictName != "종로구" {
		t.Fatalf("location = %q/%q", first.CityCode, first.DistrictName)
	}
	if first.ManagementNumber != "00000001" {
		t.Fatalf("ManagementNumber = %q", first.ManagementNumber)
	}
	if first.Canceled {
		t.Fatalf("item unexpectedly canceled")
	}
	if first.Longitude != 126.97 || first.Latitude != 37.57 {
		t.Fatalf("coordinates = %v/%v", first.Longitude, first.Latitude)
	}
}

func TestParseSearchListMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "missing totalCnt",
			body:  "<result><pageUnit>15</pageUnit><pageIndex>1</pageIndex></result>",
			field: "totalCnt",
		},
		{
			name:  "missing pageUnit",
			body:  "<result><totalCnt>0</totalCnt><pageIndex>1</pageIndex></result>",
			field: "pageUnit",
		},
		{
			name:  "missing pageIndex",
			body:  "<result><totalCnt>0</totalCnt><pageUnit>15</pageUnit></result>",
			field: "pageIndex",
		},
		{
			name:  "non-numeric totalCnt",
			body:  "<result><totalCnt>many</totalCnt><pageUnit>15</pageUnit><pageIndex>1</pageIndex></result>",
			field: "totalCnt",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseSearchList([]byte(tc.body))
			var merr *MalformedResponseError
			if !errors.As(err, &merr) {
				t.Fatalf("expected *MalformedResponseError, got %v", err)
			}
			if merr.Field != tc.field {
				t.Fatalf("Field = %q, want %q", merr.Field, tc.field)
			}
		})
	}
}

func TestParseSearchListSchemaMismatch(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{
			name: "wrong document root",
			body: []byte("<response><totalCnt>1</totalCnt></response>"),
		},
		{
			name: "not xml at all",
			body: []byte("502 bad gateway"),
		},
		{
			name: "hits without items",
			body: searchListFixture(42, 15, 1, 0),
		},
		{
			name: "more items than the page size",
			body: searchListFixture(42, 2, 1, 3),
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseSearchList(tc.body)
			var serr *SchemaMismatchError
			if !errors.As(err, &serr) {
				t.Fatalf("expected *SchemaMismatchError, got %v", err)
			}
		})
	}
}

func TestParseDetailMergesPreview(t *testing.T) {
	preview := Item{
		Name:             "숭례문",
		TypeCode:         "11",
		TypeName:         "국보",
		CityCode:         "11",
		ManagementNumber: "00010000",
	}

	body := []byte(`<result>
		<ccbaKdcd>11</ccbaKdcd>
		<ccbaAsno>00010000</ccbaAsno>
		<ccbaCtcd>11</ccbaCtcd>
		<longitude>126.9753</longitude>
		<latitude>37.5600</latitude>
		<item>
			<ccbaMnm1>서울 숭례문</ccbaMnm1>
			<ccbaLcad>서울특별시 중구 세종대로 40</ccbaLcad>
			<ccceName>조선시대</ccceName>
			<ccbaQuan>1동</ccbaQuan>
			<ccbaAsdt>19621220</ccbaAsdt>
			<ccbaPoss>국유</ccbaPoss>
			<content>서울 도성의 남쪽 정문이다.</content>
			<imageUrl>http://example.test/sungnyemun.jpg</imageUrl>
		</item>
	</result>`)

	detail, err := parseDetail(body, preview)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if detail.Name != "서울 숭례문" {
		t.Fatalf("Name = %q, want response value to win", detail.Name)
	}
	if detail.TypeName != "국보" {
		t.Fatalf("TypeName = %q, want preview value to survive", detail.TypeName)
	}
	if detail.Location != "서울특별시 중구 세종대로 40" {
		t.Fatalf("Location = %q", detail.Location)
	}
	if detail.Era != "조선시대" {
		t.Fatalf("Era = %q", detail.Era)
	}
	if detail.DesignatedDate != "19621220" {
		t.Fatalf("DesignatedDate = %q", detail.DesignatedDate)
	}
	if detail.Longitude != 126.9753 {
		t.Fatalf("Longitude = %v", detail.Longitude)
	}
}

func TestParseDetailWithoutItemNode(t *testing.T) {
	_, err := parseDetail([]byte("<result><ccbaKdcd>11</ccbaKdcd></result>"), Item{})
	var serr *SchemaMismatchError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SchemaMismatchError, got %v", err)
	}
}

func TestParseImageList(t *testing.T) {
	body := []byte(`<result>
		<totalCnt>2</totalCnt>
		<item><sn>1</sn><imageNuri>제1유형</imageNuri><imageUrl>http://example.test/1.jpg</imageUrl><ccimDesc>전경</ccimDesc></item>
		<item><sn>2</sn><imageNuri>제1유형</imageNuri><imageUrl>http://example.test/2.jpg</imageUrl><ccimDesc>야경</ccimDesc></item>
	</result>`)

	set, err := parseImageList(body)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if set.Count != 2 || len(set.Images) != 2 {
		t.Fatalf("Count = %d, len = %d", set.Count, len(set.Images))
	}
	if set.Images[1].Description != "야경" || set.Images[1].Seq != 2 {
		t.Fatalf("second image = %+v", set.Images[1])
	}
}

func TestParseImageListEmpty(t *testing.T) {
	set, err := parseImageList([]byte("<result><totalCnt>0</totalCnt></result>"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if set.Count != 0 || len(set.Images) != 0 {
		t.Fatalf("expected empty set, got %+v", set)
	}
}

func TestParseVideoList(t *testing.T) {
	body := []byte(`<result>
		<totalCnt>1</totalCnt>
		<item><sn>1</sn><videoUrl>http://example.test/tour.mp4</videoUrl></item>
	</result>`)

	set, err := parseVideoList(body)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(set.Videos) != 1 || set.Videos[0].URL != "http://example.test/tour.mp4" {
		t.Fatalf("videos = %+v", set.Videos)
	}
}

func eventListFixture(n int) []byte {
	var b strings.Builder
	b.WriteString("<result>")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, `<item>
			<sn>%d</sn>
			<siteCode>01</siteCode>
			<subTitle>문화재야행 %d회</subTitle>
			<subContent>야간 개방 행사</subContent>
			<sido>서울</sido>
			<gugun>종로구</gugun>
			<sDate>20231201</sDate>
			<eDate>20231203</eDate>
			<groupName>문화재청</groupName>
			<contact>02-0000-0000</contact>
		</item>`, i, i)
	}
	b.WriteString("</result>")
	return []byte(b.String())
}

func TestParseEventList(t *testing.T) {
	events, err := parseEventList(eventListFixture(3))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len = %d, want 3", len(events))
	}
	for i, e := range events {
		if e.Title == "" {
			t.Fatalf("event %d has empty title", i)
		}
		if e.StartDate == "" || e.EndDate == "" {
			t.Fatalf("event %d has empty dates", i)
		}
		if e.Seq != i+1 {
			t.Fatalf("event order broken: Seq = %d at index %d", e.Seq, i)
		}
	}
}

func TestParseEventListMissingTitle(t *testing.T) {
	body := []byte("<result><item><sDate>20231201</sDate><eDate>20231202</eDate></item></result>")

	_, err := parseEventList(body)
	var merr *MalformedResponseError
	if !errors.As(err, &merr) {
		t.Fatalf("expected *MalformedResponseError, got %v", err)
	}
	if merr.Field != "subTitle" {
		t.Fatalf("Field = %q, want subTitle", merr.Field)
	}
}

func TestParseEventListEmpty(t *testing.T) {
	events, err := parseEventList([]byte("<result></result>"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}
