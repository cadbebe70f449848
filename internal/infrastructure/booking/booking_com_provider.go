package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"Tabinavi-App/internal/domain/model"
	"Tabinavi-App/internal/domain/repository"
)

const bookingAPIBaseURL = "https://demandapi.booking.com/3.1"

// 検索パラメータのデフォルト値
const (
	defaultPlatform = "desktop"
	defaultCountry  = "us"
	defaultCurrency = "USD"
)

// BookingComProvider はBooking.com Demand APIを使用した宿泊検索の実装
// APIキーが未設定の場合、機能自体が無効になる（エラーではない）
type BookingComProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewBookingComProvider は新しいプロバイダを生成する
func NewBookingComProvider(apiKey string) repository.AccommodationProvider {
	return &BookingComProvider{
		apiKey:     apiKey,
		baseURL:    bookingAPIBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled はAPIキーが設定されているかを返す
func (b *BookingComProvider) Enabled() bool {
	return b.apiKey != ""
}

type accommodationSearchRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	CheckIn   string  `json:"checkin"`
	CheckOut  string  `json:"checkout"`
	Adults    int     `json:"adults"`
	Rooms     int     `json:"rooms"`
	Rows      int     `json:"rows"`
	Platform  string  `json:"platform"`
	Country   string  `json:"country"`
	Currency  string  `json:"currency"`
}

type accommodationSearchResponse struct {
	Results []struct {
		ID     json.Number `json:"id"`
		Name   string      `json:"name"`
		Rating float64     `json:"rating"`
		Price  struct {
			Amount   float64 `json:"amount"`
			Currency string  `json:"currency"`
		} `json:"price"`
	} `json:"results"`
}

// Search は座標と日程で宿泊施設を検索する
func (b *BookingComProvider) Search(ctx context.Context, coord model.Coordinate, checkIn, checkOut time.Time, adults, rooms, limit int) ([]model.AccommodationResult, error) {
	if !b.Enabled() {
		return nil, fmt.Errorf("Booking.com APIキーが設定されていません")
	}

	searchReq := accommodationSearchRequest{
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
		CheckIn:   checkIn.Format("2006-01-02"),
		CheckOut:  checkOut.Format("2006-01-02"),
		Adults:    adults,
		Rooms:     rooms,
		Rows:      limit,
		Platform:  defaultPlatform,
		Country:   defaultCountry,
		Currency:  defaultCurrency,
	}

	body, err := json.Marshal(searchReq)
	if err != nil {
		return nil, fmt.Errorf("リクエストボディの作成に失敗: %w", err)
	}

	reqURL := b.baseURL + "/accommodations/search"
	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.apiKey)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("宿泊検索APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("宿泊検索APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp accommodationSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	results := make([]model.AccommodationResult, 0, len(apiResp.Results))
	for _, r := range apiResp.Results {
		currency := r.Price.Currency
		if currency == "" {
			currency = defaultCurrency
		}
		results = append(results, model.AccommodationResult{
			ID:           r.ID.String(),
			Name:         r.Name,
			Rating:       r.Rating,
			NightlyPrice: r.Price.Amount,
			Currency:     currency,
		})
	}

	return results, nil
}
