package heritage

import "fmt"

// The code tables below mirror the official Cultural Heritage
// Administration parameter documentation (revision of 2023-11-23).
// Display names are the Korean designations the API itself returns.

// HeritageType is a designation category code (ccbaKdcd).
type HeritageType string

const (
	NationalTreasure              HeritageType = "11" // 국보
	Treasure                      HeritageType = "12" // 보물
	HistoricSite                  HeritageType = "13" // 사적
	HistoricAndScenicSite         HeritageType = "14" // 사적및명승
	ScenicSite                    HeritageType = "15" // 명승
	NaturalMonument               HeritageType = "16" // 천연기념물
	IntangibleHeritage            HeritageType = "17" // 국가무형문화재
	FolkloreHeritage              HeritageType = "18" // 국가민속문화재
	RegionalHeritage              HeritageType = "21" // 시도유형문화재
	RegionalIntangibleHeritage    HeritageType = "22" // 시도무형문화재
	RegionalMonument              HeritageType = "23" // 시도기념물
	RegionalFolkloreHeritage      HeritageType = "24" // 시도민속문화재
	RegionalRegisteredHeritage    HeritageType = "25" // 시도등록문화재
	HeritageMaterial              HeritageType = "31" // 문화재자료
	NationalRegisteredHeritage    HeritageType = "79" // 국가등록문화재
	NorthKoreanIntangibleHeritage HeritageType = "80" // 이북5도무형문화재
)

var heritageTypeNames = map[HeritageType]string{
	NationalTreasure:              "국보",
	Treasure:                      "보물",
	HistoricSite:                  "사적",
	HistoricAndScenicSite:         "사적및명승",
	ScenicSite:                    "명승",
	NaturalMonument:               "천연기념물",
	IntangibleHeritage:            "국가무형문화재",
	FolkloreHeritage:              "국가민속문화재",
	RegionalHeritage:              "시도유형문화재",
	RegionalIntangibleHeritage:    "시도무형문화재",
	RegionalMonument:              "시도기념물",
	RegionalFolkloreHeritage:      "시도민속문화재",
	RegionalRegisteredHeritage:    "시도등록문화재",
	HeritageMaterial:              "문화재자료",
	NationalRegisteredHeritage:    "국가등록문화재",
	NorthKoreanIntangibleHeritage: "이북5도무형문화재",
}

func (t HeritageType) String() string {
	if name, ok := heritageTypeNames[t]; ok {
		return fmt.Sprintf("%s (%s)", name, string(t))
	}
	return string(t)
}

// EventType is a program category code (siteCode) for the event search.
type EventType string

const (
	NighttimeHeritage          EventType = "01" // 문화재야행
	VividHeritage              EventType = "02" // 생생문화재
	TraditionalTempleHeritage  EventType = "03" // 전통산사문화재
	HyanggyoAndSeowon          EventType = "04" // 살아숨쉬는향교서원
	OtherEvents                EventType = "06" // 기타행사
	NationalIntangibleAcademy  EventType = "07" // 국립무형유산원
	CulturalHeritageFoundation EventType = "08" // 한국문화재재단
	TraditionalHouses          EventType = "09" // 고택종갓집
	WorldHeritage              EventType = "10" // 세계유산
)

var eventTypeNames = map[EventType]string{
	NighttimeHeritage:          "문화재야행",
	VividHeritage:              "생생문화재",
	TraditionalTempleHeritage:  "전통산사문화재",
	HyanggyoAndSeowon:          "살아숨쉬는향교서원",
	OtherEvents:                "기타행사",
	NationalIntangibleAcademy:  "국립무형유산원",
	CulturalHeritageFoundation: "한국문화재재단",
	TraditionalHouses:          "고택종갓집",
	WorldHeritage:              "세계유산",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return fmt.Sprintf("%s (%s)", name, string(t))
	}
	return string(t)
}

// CityCode is a province-level region code (ccbaCtcd).
type CityCode string

const (
	Seoul      CityCode = "11" // 서울
	Busan      CityCode = "21" // 부산
	Daegu      CityCode = "22" // 대구
	Incheon    CityCode = "23" // 인천
	Gwangju    CityCode = "24" // 광주
	Daejeon    CityCode = "25" // 대전
	Ulsan      CityCode = "26" // 울산
	Gyeonggi   CityCode = "31" // 경기
	Gangwon    CityCode = "32" // 강원
	Chungbuk   CityCode = "33" // 충북
	Chungnam   CityCode = "34" // 충남
	Jeonbuk    CityCode = "35" // 전북
	Jeonnam    CityCode = "36" // 전남
	Gyeongbuk  CityCode = "37" // 경북
	Gyeongnam  CityCode = "38" // 경남
	Sejong     CityCode = "45" // 세종
	Jeju       CityCode = "50" // 제주
	Nationwide CityCode = "ZZ" // 전국일원
)

var cityNames = map[CityCode]string{
	Seoul:      "서울",
	Busan:      "부산",
	Daegu:      "대구",
	Incheon:    "인천",
	Gwangju:    "광주",
	Daejeon:    "대전",
	Ulsan:      "울산",
	Gyeonggi:   "경기",
	Gangwon:    "강원",
	Chungbuk:   "충북",
	Chungnam:   "충남",
	Jeonbuk:    "전북",
	Jeonnam:    "전남",
	Gyeongbuk:  "경북",
	Gyeongnam:  "경남",
	Sejong:     "세종",
	Jeju:       "제주",
	Nationwide: "전국일원",
}

func (c CityCode) String() string {
	if name, ok := cityNames[c]; ok {
		return fmt.Sprintf("%s (%s)", name, string(c))
	}
	return string(c)
}

// Canceled filters by cancellation of the designation (ccbaCncl). The
// zero value includes both canceled and active entries by omitting the
// parameter, matching the upstream behavior for an unset filter.
type Canceled int

const (
	// CanceledEither applies no cancellation filter.
	CanceledEither Canceled = iota
	// CanceledOnly returns entries whose designation was revoked.
	CanceledOnly
	// CanceledExclude returns only entries still designated.
	CanceledExclude
)

// wire returns the ccbaCncl value and whether to send the parameter.
func (c Canceled) wire() (string, bool) {
	switch c {
	case CanceledOnly:
		return "Y", true
	case CanceledExclude:
		return "N", true
	default:
		return "", false
	}
}

func (c Canceled) String() string {
	switch c {
	case CanceledOnly:
		return "canceled only"
	case CanceledExclude:
		return "canceled excluded"
	default:
		return "either"
	}
}

// District is a district-level region code (ccbaLcto) belonging to
// exactly one CityCode. Districts exist only as the package-level
// declarations in districts.go, so a District value that does not
// belong to its city cannot be constructed.
type District struct {
	city CityCode
	code string
	name string
}

// City returns the owning province-level code.
func (d District) City() CityCode { return d.city }

// Code returns the wire code sent as ccbaLcto.
func (d District) Code() string { return d.code }

// IsZero reports whether d is the unset District.
func (d District) IsZero() bool { return d == District{} }

func (d District) String() string {
	if d.IsZero() {
		return "unset district"
	}
	return fmt.Sprintf("%s %s (%s)", cityNames[d.city], d.name, d.code)
}

// Cities returns every province-level code, in table order.
func Cities() []CityCode {
	return []CityCode{
		Seoul, Busan, Daegu, Incheon, Gwangju, Daejeon, Ulsan,
		Gyeonggi, Gangwon, Chungbuk, Chungnam, Jeonbuk, Jeonnam,
		Gyeongbuk, Gyeongnam, Sejong, Jeju, Nationwide,
	}
}

var districtsByCity = map[CityCode][]District{}

func newDistrict(city CityCode, code, name string) District {
	d := District{city: city, code: code, name: name}
	districtsByCity[city] = append(districtsByCity[city], d)
	return d
}

// DistrictsOf returns the closed district set of a city, in table order.
func DistrictsOf(city CityCode) []District {
	ds := districtsByCity[city]
	out := make([]District, len(ds))
	copy(out, ds)
	return out
}
