package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"deckprimer/internal/config"
	"deckprimer/internal/graphic"
	"deckprimer/internal/layout"
	"deckprimer/internal/models"
)

func main() {
	configPath := flag.String("config", "config.csv", "Path to the CSV configuration file")
	outputDir := flag.String("output", "images", "Output directory for generated card faces")
	logPath := flag.String("log", "logs.txt", "Path for the diagnostics log")
	margins := flag.Bool("margins", false, "Overlay margin guides on generated faces")
	fetchGraphics := flag.Bool("fetch-graphics", false, "Fetch graphics from qr_url instead of encoding it as a QR code")
	flag.Parse()

	if err := run(*configPath, *outputDir, *logPath, *margins, *fetchGraphics); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(configPath, outputDir, logPath string, margins, fetchGraphics bool) error {
	var logs []string
	// The diagnostics log is written even when the run aborts early.
	defer func() {
		if err := writeLog(logs, logPath); err != nil {
			log.Printf("Failed to write log file: %v", err)
		}
	}()

	if _, err := os.Stat(configPath); err != nil {
		logs = append(logs, fmt.Sprintf(
			"%s not found, please ensure %s exists and run again.", configPath, configPath))
		return fmt.Errorf("config file %s not found", configPath)
	}

	records, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fmt.Printf("Loaded %d records from %s\n", len(records), configPath)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	metrics, err := layout.DefaultMetrics()
	if err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	renderer := &layout.Renderer{Metrics: metrics, ShowMargins: margins}

	var source graphic.Source = graphic.NewQRCoder()
	if fetchGraphics {
		source = graphic.NewFetcher()
	}

	processed := 0
	for i, rec := range records {
		fmt.Printf("[%d/%d] Processing %s...\n", i+1, len(records), rec.ImageName)
		logs = append(logs, fmt.Sprintf("Processing %s.", rec.ImageName))

		recLogs, err := processRecord(rec, renderer, source, outputDir)
		logs = append(logs, recLogs...)
		if err != nil {
			log.Printf("  -> Failed to process %s: %v", rec.ImageName, err)
			continue
		}
		processed++
	}

	logs = append(logs, fmt.Sprintf("%d images processed.", processed))
	return nil
}

func processRecord(rec models.Record, renderer *layout.Renderer, source graphic.Source, outputDir string) ([]string, error) {
	var logs []string

	raw, err := source.Graphic(rec.QRURL)
	if err != nil {
		return logs, fmt.Errorf("failed to generate graphic: %w", err)
	}

	// The raw graphic is persisted at its natural size; the face gets the
	// resized copy.
	logs = append(logs, fmt.Sprintf("Saving %s QR code.", rec.ImageName))
	if err := savePNG(raw, filepath.Join(outputDir, rec.ImageName+"_qr.png")); err != nil {
		return logs, err
	}

	faces := renderer.Render(rec, graphic.Scale(raw, rec.QRSize))
	logs = append(logs, faces.Diagnostics...)

	logs = append(logs, fmt.Sprintf("Saving %s.", rec.ImageName))
	if err := faces.Front.SavePNG(filepath.Join(outputDir, rec.ImageName+"_front.png")); err != nil {
		return logs, err
	}
	if err := faces.Back.SavePNG(filepath.Join(outputDir, rec.ImageName+"_back.png")); err != nil {
		return logs, err
	}

	return logs, nil
}

func savePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func writeLog(lines []string, path string) error {
	if len(lines) == 0 {
		return nil
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}
