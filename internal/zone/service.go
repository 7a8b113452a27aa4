package zone

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/cicconee/lez-map/internal/datex"
	"github.com/cicconee/lez-map/internal/geojson"
)

// DefaultOutputFile is the name of the consolidated GeoJSON file.
const DefaultOutputFile = "low_emission_zones.geojson"

// Service runs the export: list the published XML documents, extract
// every zone boundary, and write the consolidated feature collection.
// Store is optional; when set, each successful run is recorded.
type Service struct {
	Client     *datex.Client
	Writer     *geojson.Writer
	Store      *Store
	Logger     *log.Logger
	OutputFile string
}

func New(client *datex.Client, writer *geojson.Writer, logger *log.Logger) *Service {
	return &Service{
		Client: client,
		Writer: writer,
		Logger: logger,
	}
}

func (s *Service) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}

	return s.Logger
}

func (s *Service) outputFile() string {
	if s.OutputFile == "" {
		return DefaultOutputFile
	}

	return s.OutputFile
}

// Run executes one full export pass: purge stale XML files, list the
// published documents, extract every zone, and write the collection.
// Per-resource failures are collected in the result and never abort
// the pass. Only filesystem failures return an error; an unreachable
// index or an empty extraction ends the run normally without writing.
func (s *Service) Run(ctx context.Context) (RunResult, error) {
	if err := s.Writer.CleanOld(); err != nil {
		return RunResult{}, fmt.Errorf("failed cleaning old XML files: %w", err)
	}

	result := RunResult{CreatedAt: time.Now().UTC()}

	urls, err := s.Client.ListResources(ctx)
	if err != nil {
		s.logger().Printf("failed fetching the XML resource list: %v", err)
		return result, nil
	}
	if len(urls) == 0 {
		s.logger().Println("no XML resources found to process")
		return result, nil
	}

	result.Resources = len(urls)
	s.logger().Printf("found %d XML resources to process", len(urls))

	extracted := s.Extract(ctx, urls)
	result.Fails = extracted.Fails
	result.Features = len(extracted.Features)
	if len(extracted.Features) == 0 {
		s.logger().Println("no features were extracted; output file was not written")
		return result, nil
	}

	collection := geojson.NewFeatureCollection(extracted.Features)
	path, err := s.Writer.Write(collection, s.outputFile())
	if err != nil {
		return result, err
	}

	result.Path = path
	s.logger().Printf("saved %d features to %s", result.Features, path)

	s.saveRun(ctx, &result, extracted)

	return result, nil
}

// Extract fetches and parses every resource, in order. A resource
// that fails to fetch or parse contributes no features and is
// recorded as a failure.
func (s *Service) Extract(ctx context.Context, urls []string) ExtractResult {
	result := ExtractResult{}
	for _, url := range urls {
		zones, err := s.Client.GetControlledZones(ctx, url)
		if err != nil {
			s.logger().Printf("failed processing %s: %v", url, err)
			result.Fails = append(result.Fails, FetchFailure{URL: url, err: err})
			continue
		}

		for _, cz := range zones {
			if feature, ok := fromDatex(cz).Feature(); ok {
				result.Features = append(result.Features, feature)
			}
		}
	}

	return result
}

// Collection returns the most recently written feature collection.
func (s *Service) Collection() (*geojson.FeatureCollection, error) {
	collection, err := s.Writer.ReadCollection(s.outputFile())
	if errors.Is(err, os.ErrNotExist) {
		return nil, &Error{
			error:      err,
			msg:        "No export has been generated yet",
			statusCode: http.StatusNotFound,
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed reading feature collection: %w", err)
	}

	return collection, nil
}

func (s *Service) saveRun(ctx context.Context, result *RunResult, extracted ExtractResult) {
	if s.Store == nil {
		return
	}

	run, err := s.Store.SaveRun(ctx, extracted.Features)
	if err != nil {
		s.logger().Printf("failed recording run history: %v", err)
		return
	}

	result.RunID = run.ID
}
