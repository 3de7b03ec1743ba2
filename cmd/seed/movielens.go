package main

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"moviecredits/errs"
	"moviecredits/movie"
)

// MovieLens genres that have no exact counterpart in movie.Genres.
var lensGenres = map[string]string{
	"Children":  "Family",
	"Film-Noir": "Crime",
	"Sci-Fi":    "Science Fiction",
	"War":       "Drama",
	"Western":   "Adventure",
}

type lensMovie struct {
	id     int
	title  string
	genres []string
}

func downloadAndExtract(zipURL string) (string, func(), error) {
	if zipURL == "" {
		return "", func() {}, errors.New("dataset url is empty")
	}

	tmpDir, err := os.MkdirTemp("", "movielens-")
	if err != nil {
		return "", func() {}, err
	}
	cleanup := func() {
		_ = os.RemoveAll(tmpDir)
	}

	zipPath := filepath.Join(tmpDir, "dataset.zip")
	if err := downloadFile(zipURL, zipPath); err != nil {
		cleanup()
		return "", func() {}, err
	}
	if err := extractCSVs(zipPath, tmpDir, "movies.csv", "ratings.csv"); err != nil {
		cleanup()
		return "", func() {}, err
	}
	return tmpDir, cleanup, nil
}

func downloadFile(url, dest string) error {
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Get(url) // nolint: noctx
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

// extractCSVs copies the named files from the archive into destDir,
// ignoring the directory they are nested under.
func extractCSVs(zipPath, destDir string, names ...string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer r.Close()

	found := 0
	for _, file := range r.File {
		base := filepath.Base(file.Name)
		if !contains(names, base) {
			continue
		}
		if err := extractFile(file, filepath.Join(destDir, base)); err != nil {
			return err
		}
		found++
	}
	if found < len(names) {
		return fmt.Errorf("archive is missing one of %s", strings.Join(names, ", "))
	}
	return nil
}

func extractFile(file *zip.File, dest string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func importMovies(ctx context.Context, movies movie.Service, dir string, limit int) (int, int, error) {
	ratings, err := readRatings(filepath.Join(dir, "ratings.csv"))
	if err != nil {
		return 0, 0, fmt.Errorf("read ratings: %w", err)
	}

	file, err := os.Open(filepath.Join(dir, "movies.csv"))
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	cols, err := readHeader(reader, "movieId", "title", "genres")
	if err != nil {
		return 0, 0, err
	}

	imported, skipped := 0, 0
	for limit <= 0 || imported < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, skipped, err
		}

		lm, ok := parseMovieRecord(record, cols)
		if !ok {
			skipped++
			continue
		}
		m, ok := lm.toMovie(ratings[lm.id])
		if !ok {
			skipped++
			continue
		}

		if _, err := movies.AddMovie(ctx, m); err != nil {
			if errs.ErrorCode(err) == errs.EINVALID {
				skipped++
				continue
			}
			return imported, skipped, err
		}
		imported++
	}
	return imported, skipped, nil
}

// readRatings averages the 0.5..5 star ratings per movie.
func readRatings(path string) (map[int]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	cols, err := readHeader(reader, "movieId", "rating")
	if err != nil {
		return nil, err
	}

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if cols[0] >= len(record) || cols[1] >= len(record) {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(record[cols[0]]))
		if err != nil {
			continue
		}
		stars, err := strconv.ParseFloat(strings.TrimSpace(record[cols[1]]), 64)
		if err != nil {
			continue
		}
		sums[id] += stars
		counts[id]++
	}

	avg := make(map[int]float64, len(sums))
	for id, sum := range sums {
		avg[id] = sum / float64(counts[id])
	}
	return avg, nil
}

// readHeader returns the index of each named column, in order.
func readHeader(reader *csv.Reader, names ...string) ([]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	cols := make([]int, len(names))
	for i, name := range names {
		cols[i] = -1
		for j, h := range header {
			if strings.TrimSpace(h) == name {
				cols[i] = j
				break
			}
		}
		if cols[i] == -1 {
			return nil, fmt.Errorf("missing column %q in csv header", name)
		}
	}
	return cols, nil
}

func parseMovieRecord(record []string, cols []int) (lensMovie, bool) {
	for _, c := range cols {
		if c >= len(record) {
			return lensMovie{}, false
		}
	}

	id, err := strconv.Atoi(strings.TrimSpace(record[cols[0]]))
	if err != nil {
		return lensMovie{}, false
	}
	return lensMovie{
		id:     id,
		title:  strings.TrimSpace(record[cols[1]]),
		genres: strings.Split(strings.TrimSpace(record[cols[2]]), "|"),
	}, true
}

// toMovie maps the first usable genre and converts the star average to
// the 1..10 scale. Unrated movies sit in the middle of the scale.
func (lm lensMovie) toMovie(stars float64) (movie.Movie, bool) {
	genre := ""
	for _, g := range lm.genres {
		if mapped, ok := lensGenres[g]; ok {
			g = mapped
		}
		if movie.ValidateGenre(g) == nil {
			genre = g
			break
		}
	}
	if genre == "" || lm.title == "" {
		return movie.Movie{}, false
	}

	rating := 5
	if stars > 0 {
		rating = int(math.Round(stars * 2))
	}
	if rating < movie.MinRating {
		rating = movie.MinRating
	} else if rating > movie.MaxRating {
		rating = movie.MaxRating
	}

	return movie.Movie{
		Title:       lm.title,
		Genre:       genre,
		Description: fmt.Sprintf("MovieLens movie %d", lm.id),
		Rating:      rating,
	}, true
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
