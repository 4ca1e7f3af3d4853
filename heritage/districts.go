package heritage

// District tables per province, from the official parameter
// documentation. Codes are not contiguous and are not shared between
// provinces.

// Seoul districts.
var (
	SeoulAll          = newDistrict(Seoul, "00", "전체")
	SeoulJongno       = newDistrict(Seoul, "11", "종로구")
	SeoulJung         = newDistrict(Seoul, "12", "중구")
	SeoulYongsan      = newDistrict(Seoul, "13", "용산구")
	SeoulSeongdong    = newDistrict(Seoul, "14", "성동구")
	SeoulDongdaemun   = newDistrict(Seoul, "15", "동대문구")
	SeoulSeongbuk     = newDistrict(Seoul, "16", "성북구")
	SeoulDobong       = newDistrict(Seoul, "17", "도봉구")
	SeoulEunpyeong    = newDistrict(Seoul, "18", "은평구")
	SeoulSeodaemun    = newDistrict(Seoul, "19", "서대문구")
	SeoulMapo         = newDistrict(Seoul, "20", "마포구")
	SeoulGangseo      = newDistrict(Seoul, "21", "강서구")
	SeoulGuro         = newDistrict(Seoul, "22", "구로구")
	SeoulYeongdeungpo = newDistrict(Seoul, "23", "영등포구")
	SeoulDongjak      = newDistrict(Seoul, "24", "동작구")
	SeoulGwanak       = newDistrict(Seoul, "25", "관악구")
	SeoulGangnam      = newDistrict(Seoul, "26", "강남구")
	SeoulGangdong     = newDistrict(Seoul, "27", "강동구")
	SeoulSongpa       = newDistrict(Seoul, "28", "송파구")
	SeoulJungnang     = newDistrict(Seoul, "29", "중랑구")
	SeoulNowon        = newDistrict(Seoul, "30", "노원구")
	SeoulSeocho       = newDistrict(Seoul, "31", "서초구")
	SeoulYangcheon    = newDistrict(Seoul, "32", "양천구")
	SeoulGwangjin     = newDistrict(Seoul, "33", "광진구")
	SeoulGangbuk      = newDistrict(Seoul, "34", "강북구")
	SeoulGeumcheon    = newDistrict(Seoul, "35", "금천구")
	SeoulHanRiver     = newDistrict(Seoul, "99", "한강일원")
	SeoulWide         = newDistrict(Seoul, "ZZ", "서울전역")
)

// Busan districts.
var (
	BusanAll       = newDistrict(Busan, "00", "전체")
	BusanJung      = newDistrict(Busan, "11", "중구")
	BusanSeo       = newDistrict(Busan, "12", "서구")
	BusanDong      = newDistrict(Busan, "13", "동구")
	BusanYeongdo   = newDistrict(Busan, "14", "영도구")
	BusanBusanjin  = newDistrict(Busan, "15", "부산진구")
	BusanDongnae   = newDistrict(Busan, "16", "동래구")
	BusanNam       = newDistrict(Busan, "17", "남구")
	BusanBuk       = newDistrict(Busan, "18", "북구")
	BusanHaeundae  = newDistrict(Busan, "19", "해운대구")
	BusanSaha      = newDistrict(Busan, "20", "사하구")
	BusanGeumjeong = newDistrict(Busan, "21", "금정구")
	BusanGangseo   = newDistrict(Busan, "22", "강서구")
	BusanYeonje    = newDistrict(Busan, "23", "연제구")
	BusanSuyeong   = newDistrict(Busan, "24", "수영구")
	BusanSasang    = newDistrict(Busan, "25", "사상구")
	BusanGijang    = newDistrict(Busan, "26", "기장군")
	BusanWide      = newDistrict(Busan, "ZZ", "부산전역")
)

// Daegu districts.
var (
	DaeguAll      = newDistrict(Daegu, "00", "전체")
	DaeguJung     = newDistrict(Daegu, "11", "중구")
	DaeguDong     = newDistrict(Daegu, "12", "동구")
	DaeguSeo      = newDistrict(Daegu, "13", "서구")
	DaeguNam      = newDistrict(Daegu, "14", "남구")
	DaeguBuk      = newDistrict(Daegu, "15", "북구")
	DaeguSuseong  = newDistrict(Daegu, "16", "수성구")
	DaeguDalseo   = newDistrict(Daegu, "17", "달서구")
	DaeguDalseong = newDistrict(Daegu, "18", "달성군")
	DaeguGunwi    = newDistrict(Daegu, "32", "군위군")
	DaeguWide     = newDistrict(Daegu, "ZZ", "대구전역")
)

// Incheon districts.
var (
	IncheonAll      = newDistrict(Incheon, "00", "전체")
	IncheonJung     = newDistrict(Incheon, "11", "중구")
	IncheonDong     = newDistrict(Incheon, "12", "동구")
	IncheonSeo      = newDistrict(Incheon, "15", "서구")
	IncheonNamdong  = newDistrict(Incheon, "16", "남동구")
	IncheonYeonsu   = newDistrict(Incheon, "17", "연수구")
	IncheonBupyeong = newDistrict(Incheon, "18", "부평구")
	IncheonGyeyang  = newDistrict(Incheon, "19", "계양구")
	IncheonMichuhol = newDistrict(Incheon, "20", "미추홀구")
	IncheonGanghwa  = newDistrict(Incheon, "30", "강화군")
	IncheonOngjin   = newDistrict(Incheon, "31", "옹진군")
	IncheonWide     = newDistrict(Incheon, "ZZ", "인천전역")
)

// Gwangju districts.
var (
	GwangjuAll      = newDistrict(Gwangju, "00", "전체")
	GwangjuDong     = newDistrict(Gwangju, "11", "동구")
	GwangjuSeo      = newDistrict(Gwangju, "12", "서구")
	GwangjuBuk      = newDistrict(Gwangju, "13", "북구")
	GwangjuGwangsan = newDistrict(Gwangju, "14", "광산구")
	GwangjuNam      = newDistrict(Gwangju, "15", "남구")
	GwangjuWide     = newDistrict(Gwangju, "ZZ", "광주전역")
)

// Daejeon districts.
var (
	DaejeonAll     = newDistrict(Daejeon, "00", "전체")
	DaejeonDong    = newDistrict(Daejeon, "11", "동구")
	DaejeonJung    = newDistrict(Daejeon, "12", "중구")
	DaejeonSeo     = newDistrict(Daejeon, "13", "서구")
	DaejeonYuseong = newDistrict(Daejeon, "14", "유성구")
	DaejeonDaedeok = newDistrict(Daejeon, "15", "대덕구")
	DaejeonWide    = newDistrict(Daejeon, "ZZ", "대전전역")
)

// Ulsan districts.
var (
	UlsanAll  = newDistrict(Ulsan, "00", "전체")
	UlsanNam  = newDistrict(Ulsan, "01", "남구")
	UlsanDong = newDistrict(Ulsan, "02", "동구")
	UlsanBuk  = newDistrict(Ulsan, "03", "북구")
	UlsanJung = newDistrict(Ulsan, "04", "중구")
	UlsanUlju = newDistrict(Ulsan, "05", "울주군")
	UlsanWide = newDistrict(Ulsan, "ZZ", "울산전역")
)

// Sejong is a single self-governing city.
var (
	SejongWide = newDistrict(Sejong, "00", "세종시전역")
)

// Gyeonggi districts.
var (
	GyeonggiAll         = newDistrict(Gyeonggi, "00", "전체")
	GyeonggiSuwon       = newDistrict(Gyeonggi, "11", "수원시")
	GyeonggiSeongnam    = newDistrict(Gyeonggi, "12", "성남시")
	GyeonggiUijeongbu   = newDistrict(Gyeonggi, "13", "의정부시")
	GyeonggiAnyang      = newDistrict(Gyeonggi, "14", "안양시")
	GyeonggiBucheon     = newDistrict(Gyeonggi, "15", "부천시")
	GyeonggiGwangmyeong = newDistrict(Gyeonggi, "16", "광명시")
	GyeonggiAnseong     = newDistrict(Gyeonggi, "17", "안성시")
	GyeonggiDongducheon = newDistrict(Gyeonggi, "18", "동두천시")
	GyeonggiGuri        = newDistrict(Gyeonggi, "19", "구리시")
	GyeonggiPyeongtaek  = newDistrict(Gyeonggi, "20", "평택시")
	GyeonggiGwacheon    = newDistrict(Gyeonggi, "21", "과천시")
	GyeonggiAnsan       = newDistrict(Gyeonggi, "22", "안산시")
	GyeonggiOsan        = newDistrict(Gyeonggi, "25", "오산시")
	GyeonggiUiwang      = newDistrict(Gyeonggi, "26", "의왕시")
	GyeonggiGunpo       = newDistrict(Gyeonggi, "27", "군포시")
	GyeonggiSiheung     = newDistrict(Gyeonggi, "28", "시흥시")
	GyeonggiHanam       = newDistrict(Gyeonggi, "30", "하남시")
	GyeonggiYangju      = newDistrict(Gyeonggi, "31", "양주시")
	GyeonggiHwaseong    = newDistrict(Gyeonggi, "35", "화성시")
	GyeonggiPaju        = newDistrict(Gyeonggi, "37", "파주시")
	GyeonggiGwangju     = newDistrict(Gyeonggi, "39", "광주시")
	GyeonggiYeoncheon   = newDistrict(Gyeonggi, "40", "연천군")
	GyeonggiPocheon     = newDistrict(Gyeonggi, "41", "포천시")
	GyeonggiGapyeong    = newDistrict(Gyeonggi, "42", "가평군")
	GyeonggiYangpyeong  = newDistrict(Gyeonggi, "43", "양평군")
	GyeonggiIcheon      = newDistrict(Gyeonggi, "44", "이천시")
	GyeonggiYongin      = newDistrict(Gyeonggi, "45", "용인시")
	GyeonggiGimpo       = newDistrict(Gyeonggi, "47", "김포시")
	GyeonggiGoyang      = newDistrict(Gyeonggi, "50", "고양시")
	GyeonggiNamyangju   = newDistrict(Gyeonggi, "51", "남양주시")
	GyeonggiYeoju       = newDistrict(Gyeonggi, "70", "여주시")
	GyeonggiWide        = newDistrict(Gyeonggi, "ZZ", "경기전역")
)

// Gangwon districts.
var (
	GangwonAll         = newDistrict(Gangwon, "00", "전체")
	GangwonChuncheon   = newDistrict(Gangwon, "11", "춘천시")
	GangwonWonju       = newDistrict(Gangwon, "12", "원주시")
	GangwonGangneung   = newDistrict(Gangwon, "13", "강릉시")
	GangwonDonghae     = newDistrict(Gangwon, "14", "동해시")
	GangwonTaebaek     = newDistrict(Gangwon, "15", "태백시")
	GangwonSokcho      = newDistrict(Gangwon, "16", "속초시")
	GangwonSamcheok    = newDistrict(Gangwon, "17", "삼척시")
	GangwonHongcheon   = newDistrict(Gangwon, "32", "홍천군")
	GangwonHoengseong  = newDistrict(Gangwon, "33", "횡성군")
	GangwonYeongwol    = newDistrict(Gangwon, "35", "영월군")
	GangwonPyeongchang = newDistrict(Gangwon, "36", "평창군")
	GangwonJeongseon   = newDistrict(Gangwon, "37", "정선군")
	GangwonCheorwon    = newDistrict(Gangwon, "38", "철원군")
	GangwonHwacheon    = newDistrict(Gangwon, "39", "화천군")
	GangwonYanggu      = newDistrict(Gangwon, "40", "양구군")
	GangwonInje        = newDistrict(Gangwon, "41", "인제군")
	GangwonGoseong     = newDistrict(Gangwon, "42", "고성군")
	GangwonYangyang    = newDistrict(Gangwon, "43", "양양군")
	GangwonMyeongju    = newDistrict(Gangwon, "44", "명주군")
	GangwonWide        = newDistrict(Gangwon, "ZZ", "강원전역")
)

// Chungbuk districts.
var (
	ChungbukAll         = newDistrict(Chungbuk, "00", "전체")
	ChungbukChungju     = newDistrict(Chungbuk, "12", "충주시")
	ChungbukJecheon     = newDistrict(Chungbuk, "13", "제천시")
	ChungbukCheongju    = newDistrict(Chungbuk, "20", "청주시")
	ChungbukBoeun       = newDistrict(Chungbuk, "32", "보은군")
	ChungbukOkcheon     = newDistrict(Chungbuk, "33", "옥천군")
	ChungbukYeongdong   = newDistrict(Chungbuk, "34", "영동군")
	ChungbukJincheon    = newDistrict(Chungbuk, "35", "진천군")
	ChungbukGoesan      = newDistrict(Chungbuk, "36", "괴산군")
	ChungbukEumseong    = newDistrict(Chungbuk, "37", "음성군")
	ChungbukDanyang     = newDistrict(Chungbuk, "40", "단양군")
	ChungbukJeungpyeong = newDistrict(Chungbuk, "42", "증평군")
	ChungbukWide        = newDistrict(Chungbuk, "ZZ", "충북전역")
)

// Chungnam districts.
var (
	ChungnamAll        = newDistrict(Chungnam, "00", "전체")
	ChungnamCheonan    = newDistrict(Chungnam, "11", "천안시")
	ChungnamGongju     = newDistrict(Chungnam, "12", "공주시")
	ChungnamSeosan     = newDistrict(Chungnam, "15", "서산시")
	ChungnamAsan       = newDistrict(Chungnam, "16", "아산시")
	ChungnamBoryeong   = newDistrict(Chungnam, "17", "보령시")
	ChungnamGyeryong   = newDistrict(Chungnam, "18", "계룡시")
	ChungnamGeumsan    = newDistrict(Chungnam, "31", "금산군")
	ChungnamNonsan     = newDistrict(Chungnam, "35", "논산시")
	ChungnamBuyeo      = newDistrict(Chungnam, "36", "부여군")
	ChungnamSeocheon   = newDistrict(Chungnam, "37", "서천군")
	ChungnamCheongyang = newDistrict(Chungnam, "39", "청양군")
	ChungnamHongseong  = newDistrict(Chungnam, "40", "홍성군")
	ChungnamYesan      = newDistrict(Chungnam, "41", "예산군")
	ChungnamDangjin    = newDistrict(Chungnam, "43", "당진시")
	ChungnamTaean      = newDistrict(Chungnam, "46", "태안군")
	ChungnamWide       = newDistrict(Chungnam, "ZZ", "충남전역")
)

// Jeonbuk districts.
var (
	JeonbukAll      = newDistrict(Jeonbuk, "00", "전체")
	JeonbukJeonju   = newDistrict(Jeonbuk, "11", "전주시")
	JeonbukGunsan   = newDistrict(Jeonbuk, "12", "군산시")
	JeonbukNamwon   = newDistrict(Jeonbuk, "15", "남원시")
	JeonbukGimje    = newDistrict(Jeonbuk, "16", "김제시")
	JeonbukJeongeup = newDistrict(Jeonbuk, "17", "정읍시")
	JeonbukIksan    = newDistrict(Jeonbuk, "18", "익산시")
	JeonbukWanju    = newDistrict(Jeonbuk, "31", "완주군")
	JeonbukJinan    = newDistrict(Jeonbuk, "32", "진안군")
	JeonbukMuju     = newDistrict(Jeonbuk, "33", "무주군")
	JeonbukJangsu   = newDistrict(Jeonbuk, "34", "장수군")
	JeonbukImsil    = newDistrict(Jeonbuk, "35", "임실군")
	JeonbukSunchang = newDistrict(Jeonbuk, "37", "순창군")
	JeonbukGochang  = newDistrict(Jeonbuk, "39", "고창군")
	JeonbukBuan     = newDistrict(Jeonbuk, "40", "부안군")
	JeonbukWide     = newDistrict(Jeonbuk, "ZZ", "전북전역")
)

// Jeonnam districts.
var (
	JeonnamAll         = newDistrict(Jeonnam, "00", "전체")
	JeonnamMokpo       = newDistrict(Jeonnam, "11", "목포시")
	JeonnamYeosu       = newDistrict(Jeonnam, "12", "여수시")
	JeonnamSuncheon    = newDistrict(Jeonnam, "13", "순천시")
	JeonnamNaju        = newDistrict(Jeonnam, "14", "나주시")
	JeonnamYeocheon    = newDistrict(Jeonnam, "15", "여천시")
	JeonnamGwangyang   = newDistrict(Jeonnam, "17", "광양시")
	JeonnamDamyang     = newDistrict(Jeonnam, "32", "담양군")
	JeonnamGokseong    = newDistrict(Jeonnam, "33", "곡성군")
	JeonnamGurye       = newDistrict(Jeonnam, "34", "구례군")
	JeonnamYeocheonGun = newDistrict(Jeonnam, "36", "여천군")
	JeonnamGoheung     = newDistrict(Jeonnam, "38", "고흥군")
	JeonnamBoseong     = newDistrict(Jeonnam, "39", "보성군")
	JeonnamHwasun      = newDistrict(Jeonnam, "40", "화순군")
	JeonnamJangheung   = newDistrict(Jeonnam, "41", "장흥군")
	JeonnamGangjin     = newDistrict(Jeonnam, "42", "강진군")
	JeonnamHaenam      = newDistrict(Jeonnam, "43", "해남군")
	JeonnamYeongam     = newDistrict(Jeonnam, "44", "영암군")
	JeonnamMuan        = newDistrict(Jeonnam, "45", "무안군")
	JeonnamHampyeong   = newDistrict(Jeonnam, "47", "함평군")
	JeonnamYeonggwang  = newDistrict(Jeonnam, "48", "영광군")
	JeonnamJangseong   = newDistrict(Jeonnam, "49", "장성군")
	JeonnamWando       = newDistrict(Jeonnam, "50", "완도군")
	JeonnamJindo       = newDistrict(Jeonnam, "51", "진도군")
	JeonnamSinan       = newDistrict(Jeonnam, "52", "신안군")
	JeonnamSeungju     = newDistrict(Jeonnam, "53", "승주군")
	JeonnamWide        = newDistrict(Jeonnam, "ZZ", "전남전역")
)

// Gyeongbuk districts.
var (
	GyeongbukAll        = newDistrict(Gyeongbuk, "00", "전체")
	GyeongbukPohang     = newDistrict(Gyeongbuk, "11", "포항시")
	GyeongbukGyeongju   = newDistrict(Gyeongbuk, "12", "경주시")
	GyeongbukGimcheon   = newDistrict(Gyeongbuk, "13", "김천시")
	GyeongbukAndong     = newDistrict(Gyeongbuk, "14", "안동시")
	GyeongbukGumi       = newDistrict(Gyeongbuk, "15", "구미시")
	GyeongbukYeongju    = newDistrict(Gyeongbuk, "16", "영주시")
	GyeongbukYeongcheon = newDistrict(Gyeongbuk, "17", "영천시")
	GyeongbukSangju     = newDistrict(Gyeongbuk, "18", "상주시")
	GyeongbukGyeongsan  = newDistrict(Gyeongbuk, "20", "경산시")
	GyeongbukMungyeong  = newDistrict(Gyeongbuk, "21", "문경시")
	GyeongbukUiseong    = newDistrict(Gyeongbuk, "33", "의성군")
	GyeongbukCheongsong = newDistrict(Gyeongbuk, "35", "청송군")
	GyeongbukYeongyang  = newDistrict(Gyeongbuk, "36", "영양군")
	GyeongbukYeongdeok  = newDistrict(Gyeongbuk, "37", "영덕군")
	GyeongbukCheongdo   = newDistrict(Gyeongbuk, "42", "청도군")
	GyeongbukGoryeong   = newDistrict(Gyeongbuk, "43", "고령군")
	GyeongbukSeongju    = newDistrict(Gyeongbuk, "44", "성주군")
	GyeongbukChilgok    = newDistrict(Gyeongbuk, "45", "칠곡군")
	GyeongbukYecheon    = newDistrict(Gyeongbuk, "50", "예천군")
	GyeongbukBonghwa    = newDistrict(Gyeongbuk, "52", "봉화군")
	GyeongbukUljin      = newDistrict(Gyeongbuk, "53", "울진군")
	GyeongbukUlleung    = newDistrict(Gyeongbuk, "54", "울릉군")
	GyeongbukWide       = newDistrict(Gyeongbuk, "ZZ", "경북전역")
)

// Gyeongnam districts.
var (
	GyeongnamAll         = newDistrict(Gyeongnam, "00", "전체")
	GyeongnamJinju       = newDistrict(Gyeongnam, "13", "진주시")
	GyeongnamGimhae      = newDistrict(Gyeongnam, "18", "김해시")
	GyeongnamMiryang     = newDistrict(Gyeongnam, "22", "밀양시")
	GyeongnamTongyeong   = newDistrict(Gyeongnam, "25", "통영시")
	GyeongnamGeoje       = newDistrict(Gyeongnam, "26", "거제시")
	GyeongnamSacheon     = newDistrict(Gyeongnam, "27", "사천시")
	GyeongnamUiryeong    = newDistrict(Gyeongnam, "32", "의령군")
	GyeongnamHaman       = newDistrict(Gyeongnam, "33", "함안군")
	GyeongnamChangnyeong = newDistrict(Gyeongnam, "34", "창녕군")
	GyeongnamYangsan     = newDistrict(Gyeongnam, "36", "양산시")
	GyeongnamUichang     = newDistrict(Gyeongnam, "39", "의창군")
	GyeongnamGoseong     = newDistrict(Gyeongnam, "42", "고성군")
	GyeongnamNamhae      = newDistrict(Gyeongnam, "44", "남해군")
	GyeongnamHadong      = newDistrict(Gyeongnam, "45", "하동군")
	GyeongnamSancheong   = newDistrict(Gyeongnam, "46", "산청군")
	GyeongnamHamyang     = newDistrict(Gyeongnam, "47", "함양군")
	GyeongnamGeochang    = newDistrict(Gyeongnam, "48", "거창군")
	GyeongnamHapcheon    = newDistrict(Gyeongnam, "49", "합천군")
	GyeongnamChangwon    = newDistrict(Gyeongnam, "50", "창원시")
	GyeongnamWide        = newDistrict(Gyeongnam, "ZZ", "경남전역")
)

// Jeju districts.
var (
	JejuAll      = newDistrict(Jeju, "00", "전체")
	JejuCity     = newDistrict(Jeju, "01", "제주시")
	JejuSeogwipo = newDistrict(Jeju, "02", "서귀포시")
	JejuWide     = newDistrict(Jeju, "ZZ", "제주전역")
)
