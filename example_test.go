package clusterviz_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/clusterviz"
	"github.com/hupe1980/clusterviz/model"
)

// Example_cluster partitions two well separated groups.
func Example_cluster() {
	ctx := context.Background()
	points := model.PointSet{{0, 0, 0}, {0, 0, 1}, {10, 10, 10}, {10, 10, 11}}

	res, err := clusterviz.Cluster(ctx, points, 2, clusterviz.WithSeed(42))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Labels[0] == res.Labels[1], res.Labels[2] == res.Labels[3])
	fmt.Println(res.Centroids[res.Labels[0]], res.Centroids[res.Labels[2]])
	// Output:
	// true true
	// [0, 0, 0.5] [10, 10, 10.5]
}

// Example_nearest looks up the closest point to a query.
func Example_nearest() {
	points := model.PointSet{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}}

	q, err := clusterviz.Nearest(context.Background(), points, model.Point{2.1, 2.1, 2.1})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(q.Index, q.Point)
	// Output: 1 [2, 2, 2]
}

// Example_emptyInput shows the explicit error for an empty point set.
func Example_emptyInput() {
	_, err := clusterviz.Nearest(context.Background(), nil, model.Point{0, 0, 0})
	fmt.Println(errors.Is(err, clusterviz.ErrEmptyInput))
	// Output: true
}
