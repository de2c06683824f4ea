package listview

import (
	"math"

	"delivery-console/internal/domain"
)

// FilterByRating keeps reviews with exactly rating stars; nil keeps all.
func FilterByRating(reviews []domain.Review, rating *int) []domain.Review {
	out := make([]domain.Review, 0, len(reviews))
	for _, review := range reviews {
		if rating == nil || review.Rating == *rating {
			out = append(out, review)
		}
	}
	return out
}

// AverageRating is the mean rating rounded to one decimal, 0 when empty.
func AverageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}

type RatingBucket struct {
	Stars   int `json:"stars"`
	Count   int `json:"count"`
	Percent int `json:"percent"`
}

// RatingDistribution counts reviews per star, five stars first. Ratings
// outside 1..5 are not counted.
func RatingDistribution(reviews []domain.Review) []RatingBucket {
	var counts [5]int
	for _, review := range reviews {
		if review.Rating >= 1 && review.Rating <= 5 {
			counts[review.Rating-1]++
		}
	}
	buckets := make([]RatingBucket, 0, 5)
	for stars := 5; stars >= 1; stars-- {
		bucket := RatingBucket{Stars: stars, Count: counts[stars-1]}
		if len(reviews) > 0 {
			bucket.Percent = int(math.Round(float64(bucket.Count) / float64(len(reviews)) * 100))
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// PositiveCount counts reviews of four stars or more.
func PositiveCount(reviews []domain.Review) int {
	n := 0
	for _, review := range reviews {
		if review.Rating >= 4 {
			n++
		}
	}
	return n
}
