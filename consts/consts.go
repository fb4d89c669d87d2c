package consts

import "time"

// Server configuration
const (
	DefaultPort       = "8080"
	ReadHeaderTimeout = 3 * time.Second
	RateLimitRequests = 20
	RateLimitWindow   = time.Minute
	MaxUploadSize     = 5 << 20 // 5 MiB
)

// Cron schedules
const (
	CronReload        = "*/5 * * * *" // Every 5 minutes
	CronGenerateChart = "5 0 * * *"   // Daily at 00:05 UTC
)

// Dataset
const (
	CountryColumn   = "Country"
	DefaultDataFile = "countriesMBTI_16types.csv"
	DefaultTopN     = 10
	MaxTopN         = 50
)

// File paths and directories
const (
	ChartDataDir   = "web/chartdata"
	ChartsJSONFile = "charts.json"
	ConfigFileName = "mbti-insights"
)

// File permissions
const (
	DirPermissions  = 0750
	FilePermissions = 0600
)

// Chart configuration
const (
	ChartWidth        = "900px"
	ChartHeight       = "480px"
	EChartsAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"
)

// Chart colors and styling. TealBlues is the colour ramp used to encode bar
// values, from the lowest to the highest value.
const (
	ChartBackgroundColor = "#ffffff"
	ChartTextColor       = "#000000"
)

var TealBlues = []string{"#bce4d8", "#8dc7cf", "#5aa8c1", "#3a88b0", "#2c5985"}

// Labels shown in the dashboard
const (
	PageTitle        = "🌍 국가별 MBTI 유형 분석 대시보드"
	PageIntro        = "MBTI 유형별로 전 세계 국가들의 분포를 살펴보세요. 특정 MBTI 유형을 선택하면, 그 유형의 비율이 높은 상위 국가를 시각적으로 확인할 수 있습니다."
	SelectLabel      = "🔍 분석할 MBTI 유형을 선택하세요:"
	UploadLabel      = "CSV 파일 업로드 (Country 열과 MBTI 유형 열이 포함되어야 합니다)"
	UploadIntro      = "📈 데이터 입력 가능합니다."
	UploadSuccess    = "✅ CSV 파일이 업로드되었습니다!"
	MissingColumnMsg = "⚠️ 업로드한 CSV에 '%s' 열이 없습니다."
	ParseFailureMsg  = "⚠️ CSV 파일을 읽을 수 없습니다: %s"
	ChartTitle       = "🌟 %s 비율이 높은 국가 TOP %d"
	UploadChartTitle = "📊 업로드한 데이터 기반 %s TOP %d"
	ValueAxisName    = "%s 비율 (%%)"
	CountryAxisName  = "국가"
	ValueTooltip     = "{b}<br/>{a}: {c}%"
	MissingTooltip   = "{b}<br/>{a}: -"
)
