package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxFarms int = 1000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

var sensorTypes = []string{"soil", "weather", "weather_station", "air_quality"}

func main() {
	farmIDs := make([]string, maxFarms)
	for i := range maxFarms {
		farmIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v farm IDs\n", maxFarms)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxFarms {
		wg.Add(1)
		go func() {
			upsertFarm(farmIDs[i])
			fmt.Printf("\rupserted profile for farm %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rupserted profile for %v farms: used time=%v seconds, throughput=%v action/second\n",
		maxFarms, usedTime.Seconds(), float64(maxFarms)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxFarms {
		wg.Add(1)
		go func() {
			doAction(farmIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v farms: used time=%v seconds, throughput=%v action/second\n",
		maxFarms, usedTime.Seconds(), float64(maxFarms*4)/usedTime.Seconds(),
	)

	startTime = time.Now()
	post(fmt.Sprintf("http://%s/scores/run", httpHostPort), nil)
	fmt.Printf("batch scoring over all farms: used time=%v seconds\n", time.Since(startTime).Seconds())
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func rndIntn(n int) int {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Intn(n)
}

func post(url string, payload any) {
	var body []byte
	if payload != nil {
		body, _ = json.Marshal(payload)
	}
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("\nresponse status code != 200: %v\n", resp.Status)
	}
}

func get(url string) {
	resp, err := http.Get(url)
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("\nresponse status code != 200: %v\n", resp.Status)
	}
}

// upsertFarm places the farm somewhere in peninsular India.
func upsertFarm(farmID string) {
	post(fmt.Sprintf("http://%s/farms/%s", httpHostPort, farmID), map[string]any{
		"name":      "Bench " + farmID[:8],
		"latitude":  rndFloat64(8.0, 22.0, 4),
		"longitude": rndFloat64(73.0, 87.0, 4),
		"crop":      "rice",
	})
}

func doAction(farmID string) {
	actions := []func(){
		genPostReadingAction(farmID),
		genPostFireRiskAction(farmID),
		genCalculateScoreAction(farmID),
		genGetDashboardAction(farmID),
	}
	actionNames := []string{
		"PostReading",
		"PostFireRisk",
		"CalculateScore",
		"GetDashboard",
	}
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for farm %v", actionNames[index], farmID)
		time.Sleep(time.Duration(100+rndIntn(1000)) * time.Millisecond)
	}
}

func genPostReadingAction(farmID string) func() {
	return func() {
		payload := map[string]any{
			"sensor_type":   sensorTypes[rndIntn(len(sensorTypes))],
			"timestamp":     time.Now().Format(time.RFC3339),
			"soil_ph":       rndFloat64(4.5, 8.5, 2),
			"soil_moisture": rndFloat64(10, 90, 1),
			"nitrogen":      rndFloat64(10, 120, 1),
			"rainfall":      rndFloat64(0, 20, 1),
			"humidity":      rndFloat64(20, 95, 1),
			"co2":           rndFloat64(380, 600, 1),
			"ch4":           rndFloat64(0, 2, 2),
		}
		post(fmt.Sprintf("http://%s/farms/%s/readings", httpHostPort, farmID), payload)
	}
}

func genPostFireRiskAction(farmID string) func() {
	return func() {
		incidents := make([]map[string]any, rndIntn(5))
		for i := range incidents {
			incidents[i] = map[string]any{
				"latitude":   rndFloat64(8.0, 22.0, 4),
				"longitude":  rndFloat64(73.0, 87.0, 4),
				"confidence": rndIntn(100),
			}
		}
		post(fmt.Sprintf("http://%s/farms/%s/fire-risk", httpHostPort, farmID), map[string]any{"incidents": incidents})
	}
}

func genCalculateScoreAction(farmID string) func() {
	return func() {
		post(fmt.Sprintf("http://%s/farms/%s/score", httpHostPort, farmID), nil)
	}
}

func genGetDashboardAction(farmID string) func() {
	return func() {
		get(fmt.Sprintf("http://%s/farms/%s/dashboard", httpHostPort, farmID))
	}
}
