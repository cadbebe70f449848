package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"Tabinavi-App/internal/database"
	domainRepo "Tabinavi-App/internal/domain/repository"
	"Tabinavi-App/internal/domain/service"
	"Tabinavi-App/internal/handler"
	"Tabinavi-App/internal/infrastructure/booking"
	infraDB "Tabinavi-App/internal/infrastructure/database"
	"Tabinavi-App/internal/infrastructure/firestore"
	"Tabinavi-App/internal/infrastructure/geocoding"
	"Tabinavi-App/internal/infrastructure/places"
	"Tabinavi-App/internal/infrastructure/weather"
	"Tabinavi-App/internal/repository"
	"Tabinavi-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	ctx := context.Background()

	// スポット検索プロバイダーの選択（POI_SOURCE: opentripmap / overpass / postgres）
	placesProvider, cleanup, err := buildPlacesProvider()
	if err != nil {
		log.Fatalf("スポット検索プロバイダーの初期化失敗: %v", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	// コラボレーターの初期化
	geocodingProvider := geocoding.NewOpenMeteoGeocodingProvider()
	forecastProvider := weather.NewOpenMeteoForecastProvider()
	accommodationProvider := booking.NewBookingComProvider(os.Getenv("BOOKING_API_KEY"))
	if !accommodationProvider.Enabled() {
		fmt.Println("⚠️  BOOKING_API_KEY未設定のため宿泊検索は無効です")
	}

	// ドメインサービスの初期化
	weatherScoreService := service.NewWeatherScoreService()
	dayPlanService := service.NewDayPlanService(placesProvider)
	accommodationService := service.NewAccommodationService(accommodationProvider)
	reportService := service.NewTripReportService()

	// Firestore（計画提案の保存、オプション）
	var planRepo domainRepo.TripPlanRepository
	if projectID := os.Getenv("FIRESTORE_PROJECT_ID"); projectID != "" {
		firestoreClient, err := firestore.NewFirestoreClient(ctx, projectID)
		if err != nil {
			log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
		}
		defer firestoreClient.Close()
		planRepo = repository.NewFirestoreTripPlanRepository(firestoreClient.GetClient())
		fmt.Println("✅ Firestore connection successful!")
	} else {
		fmt.Println("⚠️  FIRESTORE_PROJECT_ID未設定のため計画の保存機能は無効です")
	}

	// Supabase（旅行履歴の記録、オプション）
	var historyRepo domainRepo.TripHistoryRepository
	if os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_ANON_KEY") != "" {
		supabaseClient, err := database.NewSupabaseClient()
		if err != nil {
			log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
		}
		if err := supabaseClient.HealthCheck(); err != nil {
			log.Fatalf("Supabaseヘルスチェック失敗: %v", err)
		}
		historyRepo = repository.NewSupabaseTripHistoryRepository(supabaseClient)
		fmt.Println("✅ Supabase connection successful!")
	} else {
		fmt.Println("⚠️  SUPABASE_URL/SUPABASE_ANON_KEY未設定のため履歴の記録機能は無効です")
	}

	// UseCaseとハンドラーの組み立て
	tripPlanUseCase := usecase.NewTripPlanUseCase(
		geocodingProvider,
		forecastProvider,
		weatherScoreService,
		dayPlanService,
		accommodationService,
		reportService,
		planRepo,
		historyRepo,
	)
	tripPlanHandler := handler.NewTripPlanHandler(tripPlanUseCase)

	// ルーティング設定
	r := gin.Default()
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "Tabinavi-App"})
	})
	r.POST("/trips/plan", tripPlanHandler.PostTripPlan)
	r.POST("/trips/weather-plan", tripPlanHandler.PostWeatherTripPlan)
	r.GET("/trips/plans/:id", tripPlanHandler.GetTripPlan)
	r.GET("/trips/history", tripPlanHandler.GetTripHistory)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Tabinavi-App server starting on :%s...\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("サーバー起動失敗: %v", err)
	}
}

// buildPlacesProvider はPOI_SOURCE環境変数に応じてスポット検索プロバイダーを構築する
func buildPlacesProvider() (domainRepo.PlacesProvider, func(), error) {
	source := os.Getenv("POI_SOURCE")
	if source == "" {
		source = "opentripmap"
	}

	switch source {
	case "opentripmap":
		apiKey := os.Getenv("OPENTRIPMAP_API_KEY")
		if apiKey == "" {
			return nil, nil, fmt.Errorf("OPENTRIPMAP_API_KEY環境変数が設定されていません")
		}
		fmt.Println("✅ スポット検索: OpenTripMap API")
		return places.NewOpenTripMapPlacesProvider(apiKey), nil, nil

	case "overpass":
		// Overpass APIはキー不要（公共エンドポイント）
		fmt.Println("✅ スポット検索: Overpass API")
		return places.NewOverpassPlacesProvider(os.Getenv("OVERPASS_ENDPOINT")), nil, nil

	case "postgres":
		postgresClient, err := infraDB.NewPostgreSQLClient()
		if err != nil {
			return nil, nil, fmt.Errorf("PostgreSQL初期化失敗: %w", err)
		}
		if err := postgresClient.HealthCheck(); err != nil {
			postgresClient.Close()
			return nil, nil, fmt.Errorf("PostgreSQLヘルスチェック失敗: %w", err)
		}
		fmt.Println("✅ スポット検索: PostgreSQLカタログ")
		cleanup := func() { postgresClient.Close() }
		return repository.NewPostgresPlacesRepository(postgresClient), cleanup, nil

	default:
		return nil, nil, fmt.Errorf("未対応のPOI_SOURCE: %s (opentripmap / overpass / postgres)", source)
	}
}
