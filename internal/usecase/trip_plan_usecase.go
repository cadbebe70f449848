package usecase

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"Tabinavi-App/internal/domain/model"
	"Tabinavi-App/internal/domain/repository"
	"Tabinavi-App/internal/domain/service"
)

type TripPlanUseCase interface {
	// PlanTrip はリクエストに基づいて旅行計画を生成し、レポートと一緒に返す
	PlanTrip(ctx context.Context, req *model.TripPlanRequest) (*model.TripPlanResponse, error)

	// PlanWeatherBasedTrip は希望の天気条件に合う日程を探して旅行計画を生成する
	PlanWeatherBasedTrip(ctx context.Context, req *model.WeatherTripRequest) (*model.TripPlanResponse, error)

	// GetTripPlan は保存済みの旅行計画提案をproposal_idで取得する
	GetTripPlan(ctx context.Context, proposalID string) (*model.StoredTripPlan, error)

	// GetTripHistory は目的地名で過去に生成した計画の履歴を取得する
	GetTripHistory(ctx context.Context, destination string) ([]model.TripHistoryRecord, error)
}

// tripPlanUseCaseImpl はTripPlanUseCaseの実装
type tripPlanUseCaseImpl struct {
	geocodingProvider    repository.GeocodingProvider
	forecastProvider     repository.ForecastProvider
	weatherScoreService  *service.WeatherScoreService
	dayPlanService       service.DayPlanService
	accommodationService service.AccommodationService
	reportService        *service.TripReportService
	planRepo             repository.TripPlanRepository
	historyRepo          repository.TripHistoryRepository
}

// NewTripPlanUseCase は新しいTripPlanUseCaseインスタンスを作成
// planRepoとhistoryRepoはnil許容（保存機能なしで計画生成のみ動作する）
func NewTripPlanUseCase(
	geocodingProvider repository.GeocodingProvider,
	forecastProvider repository.ForecastProvider,
	weatherScoreService *service.WeatherScoreService,
	dayPlanService service.DayPlanService,
	accommodationService service.AccommodationService,
	reportService *service.TripReportService,
	planRepo repository.TripPlanRepository,
	historyRepo repository.TripHistoryRepository,
) TripPlanUseCase {
	return &tripPlanUseCaseImpl{
		geocodingProvider:    geocodingProvider,
		forecastProvider:     forecastProvider,
		weatherScoreService:  weatherScoreService,
		dayPlanService:       dayPlanService,
		accommodationService: accommodationService,
		reportService:        reportService,
		planRepo:             planRepo,
		historyRepo:          historyRepo,
	}
}

// 保存した旅行計画提案の有効期限（時間）
const proposalTTLHours = 24

// PlanTrip はリクエストに基づいて旅行計画を生成し、レポートと一緒に返す
func (u *tripPlanUseCaseImpl) PlanTrip(ctx context.Context, req *model.TripPlanRequest) (*model.TripPlanResponse, error) {
	log.Printf("🚀 旅行計画生成開始 (目的地: %s, スタイル: %s)", req.Destination, req.TripStyle)

	// Step 1: 入力値の検証とデフォルト補完
	durationDays, tripStyle, budget, err := u.validatePlanRequest(req)
	if err != nil {
		return nil, err
	}
	style := model.TripStyleProfiles[tripStyle]

	// Step 2: 目的地の座標解決
	coord, err := u.geocodingProvider.Resolve(ctx, req.Destination)
	if err != nil {
		return nil, fmt.Errorf("目的地の解決に失敗: %w", err)
	}
	log.Printf("✅ 目的地を解決: %s -> %s", req.Destination, coord.Label())

	// Step 3: 日程の決定（明示指定 or 天気スコアによる最適化）
	startDate, dateNote, err := u.selectStartDate(ctx, coord, req.StartDate, durationDays)
	if err != nil {
		return nil, err
	}

	// Step 4: 1日ごとの旅程を組み立てる
	dayPlans := make([]*model.DayPlan, 0, durationDays)
	for i := 0; i < durationDays; i++ {
		date := startDate.AddDate(0, 0, i)
		dayPlans = append(dayPlans, u.dayPlanService.PlanDay(ctx, coord, date, style))
	}
	log.Printf("✅ %d日分の旅程を生成", len(dayPlans))

	plan := &model.TripPlan{
		DestinationLabel:  req.Destination,
		Coordinate:        coord,
		DayPlans:          dayPlans,
		TripStyle:         tripStyle,
		Budget:            budget,
		DateSelectionNote: dateNote,
	}

	// Step 5: 宿泊プランの選定（オプション、失敗しても計画は継続）
	if req.IncludeAccommodation {
		plan.Accommodation = u.accommodationService.PickAccommodation(ctx, coord, startDate, durationDays)
	}

	// Step 6: レポート生成と保存
	report := u.reportService.FormatTripPlan(plan)
	proposalID := u.savePlan(ctx, plan, report)
	u.recordHistory(ctx, plan, false)

	log.Printf("✅ 旅行計画生成完了 (目的地: %s, %d日間, アクティビティ%d件)",
		req.Destination, plan.DurationDays(), plan.TotalActivities())

	return &model.TripPlanResponse{
		ProposalID: proposalID,
		Report:     report,
		Plan:       plan,
	}, nil
}

// PlanWeatherBasedTrip は希望の天気条件に合う連続日程を予報から探して旅行計画を生成する
func (u *tripPlanUseCaseImpl) PlanWeatherBasedTrip(ctx context.Context, req *model.WeatherTripRequest) (*model.TripPlanResponse, error) {
	log.Printf("🚀 天気条件ベースの旅行計画生成開始 (目的地: %s, 天気: %s)", req.Destination, req.WeatherCondition)

	// Step 1: 入力値の検証とデフォルト補完
	durationDays, tripStyle, condition, err := u.validateWeatherRequest(req)
	if err != nil {
		return nil, err
	}
	style := model.TripStyleProfiles[tripStyle]
	slotCategories := model.WeatherActivityMapping[condition]

	// Step 2: 目的地の座標解決
	coord, err := u.geocodingProvider.Resolve(ctx, req.Destination)
	if err != nil {
		return nil, fmt.Errorf("目的地の解決に失敗: %w", err)
	}
	log.Printf("✅ 目的地を解決: %s -> %s", req.Destination, coord.Label())

	// Step 3: 指定条件に合う連続日程を予報から探す
	startDate, dateNote, err := u.findWeatherWindow(ctx, coord, condition, durationDays)
	if err != nil {
		return nil, err
	}

	// Step 4: 天気条件に合わせた時間帯別カテゴリで旅程を組み立てる
	dayPlans := make([]*model.DayPlan, 0, durationDays)
	for i := 0; i < durationDays; i++ {
		date := startDate.AddDate(0, 0, i)
		dayPlans = append(dayPlans, u.dayPlanService.PlanWeatherDay(ctx, coord, date, slotCategories, style))
	}
	log.Printf("✅ %d日分の旅程を生成", len(dayPlans))

	plan := &model.TripPlan{
		DestinationLabel:  req.Destination,
		Coordinate:        coord,
		DayPlans:          dayPlans,
		TripStyle:         tripStyle,
		Budget:            model.BudgetMidRange,
		WeatherCondition:  condition,
		DateSelectionNote: dateNote,
	}

	report := u.reportService.FormatWeatherTripPlan(plan)
	proposalID := u.savePlan(ctx, plan, report)
	u.recordHistory(ctx, plan, true)

	log.Printf("✅ 天気条件ベースの旅行計画生成完了 (目的地: %s, %d日間)", req.Destination, plan.DurationDays())

	return &model.TripPlanResponse{
		ProposalID: proposalID,
		Report:     report,
		Plan:       plan,
	}, nil
}

// GetTripPlan は保存済みの旅行計画提案をproposal_idで取得する
func (u *tripPlanUseCaseImpl) GetTripPlan(ctx context.Context, proposalID string) (*model.StoredTripPlan, error) {
	if u.planRepo == nil {
		return nil, fmt.Errorf("旅行計画の保存機能が無効です")
	}
	return u.planRepo.GetTripPlan(ctx, proposalID)
}

// GetTripHistory は目的地名で過去に生成した計画の履歴を取得する
func (u *tripPlanUseCaseImpl) GetTripHistory(ctx context.Context, destination string) ([]model.TripHistoryRecord, error) {
	if u.historyRepo == nil {
		return nil, fmt.Errorf("旅行履歴の記録機能が無効です")
	}
	if strings.TrimSpace(destination) == "" {
		return nil, model.NewValidationError("Destination is required")
	}

	records, err := u.historyRepo.GetByDestination(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("旅行履歴の取得に失敗: %w", err)
	}
	return records, nil
}

// validatePlanRequest は通常計画リクエストを検証し、補完済みのパラメータを返す
func (u *tripPlanUseCaseImpl) validatePlanRequest(req *model.TripPlanRequest) (int, string, string, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return 0, "", "", model.NewValidationError("Destination is required")
	}

	durationDays, err := parseDuration(req.Duration)
	if err != nil {
		return 0, "", "", err
	}

	tripStyle := req.TripStyle
	if tripStyle == "" {
		tripStyle = model.DefaultTripStyle
	}
	if _, ok := model.TripStyleProfiles[tripStyle]; !ok {
		return 0, "", "", model.NewValidationError("Invalid trip style '%s'. Valid styles: %s",
			tripStyle, strings.Join(model.GetAllTripStyles(), ", "))
	}

	budget := req.Budget
	if budget == "" {
		budget = model.DefaultBudget
	}
	if _, ok := model.BudgetProfiles[budget]; !ok {
		return 0, "", "", model.NewValidationError("Invalid budget '%s'. Valid budgets: %s",
			budget, strings.Join(model.GetAllBudgets(), ", "))
	}

	return durationDays, tripStyle, budget, nil
}

// validateWeatherRequest は天気条件ベースのリクエストを検証し、補完済みのパラメータを返す
func (u *tripPlanUseCaseImpl) validateWeatherRequest(req *model.WeatherTripRequest) (int, string, string, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return 0, "", "", model.NewValidationError("Destination is required")
	}

	condition := strings.ToLower(strings.TrimSpace(req.WeatherCondition))
	if _, ok := model.WeatherActivityMapping[condition]; !ok {
		return 0, "", "", model.NewValidationError("Invalid weather condition '%s'. Valid conditions: %s",
			req.WeatherCondition, strings.Join(model.GetAllWeatherConditions(), ", "))
	}

	durationDays, err := parseDuration(req.Duration)
	if err != nil {
		return 0, "", "", err
	}

	tripStyle := req.TripStyle
	if tripStyle == "" {
		tripStyle = model.DefaultTripStyle
	}
	if _, ok := model.TripStyleProfiles[tripStyle]; !ok {
		return 0, "", "", model.NewValidationError("Invalid trip style '%s'. Valid styles: %s",
			tripStyle, strings.Join(model.GetAllTripStyles(), ", "))
	}

	return durationDays, tripStyle, condition, nil
}

// parseDuration は日数指定（数値文字列またはプリセット名）を日数に変換する
func parseDuration(raw string) (int, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return model.DefaultTripDurationDays, nil
	}

	if days, ok := model.TripDurationPresets[raw]; ok {
		return days, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewValidationError("Invalid duration '%s'. Use a number of days (%d-%d) or a preset: %s",
			raw, model.MinTripDurationDays, model.MaxTripDurationDays, strings.Join(model.GetAllDurationPresets(), ", "))
	}
	if days < model.MinTripDurationDays || days > model.MaxTripDurationDays {
		return 0, model.NewValidationError("Duration must be between %d and %d days, got %d",
			model.MinTripDurationDays, model.MaxTripDurationDays, days)
	}

	return days, nil
}

// selectStartDate は開始日を決定する
// 明示指定があればそれを使い、なければ予報期間内で最も天気スコアの高い連続期間を選ぶ
// 予報の取得失敗や期間不足の場合は明日開始にフォールバックする（計画生成は止めない）
func (u *tripPlanUseCaseImpl) selectStartDate(ctx context.Context, coord model.Coordinate, explicitStart string, durationDays int) (time.Time, string, error) {
	if explicitStart != "" {
		startDate, err := time.Parse("2006-01-02", explicitStart)
		if err != nil {
			return time.Time{}, "", model.NewValidationError("Invalid start date '%s'. Use YYYY-MM-DD format", explicitStart)
		}
		return startDate, "", nil
	}

	forecast, err := u.forecastProvider.Fetch(ctx, coord, model.ForecastWindowDays)
	if err != nil {
		log.Printf("⚠️ 天気予報の取得に失敗、明日開始にフォールバック: %v", err)
		return tomorrow(), "Weather forecast was unavailable, so the trip starts tomorrow by default.", nil
	}

	scoredDays := u.weatherScoreService.ScoreForecast(forecast)
	window, ok := u.weatherScoreService.SelectBestWindow(scoredDays, durationDays)
	if !ok {
		log.Printf("⚠️ %d日間の連続した予報期間が見つからず、明日開始にフォールバック", durationDays)
		note := fmt.Sprintf("The forecast had no contiguous %d-day window, so the trip starts tomorrow by default.", durationDays)
		return tomorrow(), note, nil
	}

	avgScore := 0
	for _, day := range window {
		avgScore += day.Score
	}
	avgScore /= len(window)
	log.Printf("✅ 天気スコアで日程を決定 (開始: %s, 平均スコア: %d/100)",
		window[0].Date.Format("2006-01-02"), avgScore)

	note := fmt.Sprintf("Dates were chosen for the best weather in the next %d days (average weather score %d/100).",
		model.ForecastWindowDays, avgScore)
	return window[0].Date, note, nil
}

// findWeatherWindow は指定の天気条件が続く最も早い連続期間の開始日を探す
// 予報の取得に失敗した場合は2日後開始にフォールバックする（条件は保証されない旨をノートに残す）
func (u *tripPlanUseCaseImpl) findWeatherWindow(ctx context.Context, coord model.Coordinate, condition string, durationDays int) (time.Time, string, error) {
	forecast, err := u.forecastProvider.Fetch(ctx, coord, model.ForecastWindowDays)
	if err != nil {
		log.Printf("⚠️ 天気予報の取得に失敗、2日後開始にフォールバック: %v", err)
		fallback := time.Now().AddDate(0, 0, 2)
		note := fmt.Sprintf("Weather forecast was unavailable, so the trip starts in 2 days. The requested %s conditions are not guaranteed.",
			strings.ReplaceAll(condition, "_", " "))
		return fallback, note, nil
	}

	for i := 0; i+durationDays <= len(forecast); i++ {
		if !matchesConditionRun(forecast[i:i+durationDays], condition) {
			continue
		}
		startDate := forecast[i].Date
		log.Printf("✅ %s条件の連続期間を発見 (開始: %s)", condition, startDate.Format("2006-01-02"))
		note := fmt.Sprintf("Dates were chosen for %s weather conditions within the %d-day forecast.",
			strings.ReplaceAll(condition, "_", " "), model.ForecastWindowDays)
		return startDate, note, nil
	}

	return time.Time{}, "", fmt.Errorf("%d日間の%s条件の期間が予報内に見つかりません: %w",
		durationDays, condition, model.ErrNoMatchingWeather)
}

// matchesConditionRun は連続した日程全体が指定の天気条件に該当するかを判定する
func matchesConditionRun(days []model.DailyForecast, condition string) bool {
	for i, day := range days {
		if !model.MatchesWeatherCondition(day.ConditionCode, condition) {
			return false
		}
		if i > 0 && !days[i-1].Date.AddDate(0, 0, 1).Equal(day.Date) {
			return false
		}
	}
	return true
}

// savePlan は計画をFirestoreに保存してproposal_idを返す（保存機能が無効・失敗時は空文字）
func (u *tripPlanUseCaseImpl) savePlan(ctx context.Context, plan *model.TripPlan, report string) string {
	if u.planRepo == nil {
		return ""
	}

	stored, err := u.planRepo.SaveTripPlan(ctx, plan, report, proposalTTLHours)
	if err != nil {
		log.Printf("⚠️ 旅行計画の保存に失敗（計画は返却する）: %v", err)
		return ""
	}
	return stored.ProposalID
}

// recordHistory は生成した計画の履歴をSupabaseに記録する（失敗してもログのみ）
func (u *tripPlanUseCaseImpl) recordHistory(ctx context.Context, plan *model.TripPlan, weatherOptimized bool) {
	if u.historyRepo == nil {
		return
	}

	record := &model.TripHistoryRecord{
		DestinationLabel: plan.DestinationLabel,
		Latitude:         plan.Coordinate.Latitude,
		Longitude:        plan.Coordinate.Longitude,
		TripStyle:        plan.TripStyle,
		Budget:           plan.Budget,
		DurationDays:     plan.DurationDays(),
		WeatherOptimized: weatherOptimized,
		TotalActivities:  plan.TotalActivities(),
	}

	if err := u.historyRepo.Create(ctx, record); err != nil {
		log.Printf("⚠️ 旅行履歴の記録に失敗: %v", err)
	}
}

// tomorrow は明日の0時（ローカル時刻）を返す
func tomorrow() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}
