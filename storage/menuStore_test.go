package storage

import (
	"testing"

	"github.com/Sanjay-Kumar-Git/eatoes-Admin/services"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func TestBuildMenuFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter services.MenuFilter
		want   bson.M
	}{
		{
			name:   "empty filter matches everything",
			filter: services.MenuFilter{},
			want:   bson.M{},
		},
		{
			name:   "category only",
			filter: services.MenuFilter{Category: "Dessert"},
			want:   bson.M{"category": "Dessert"},
		},
		{
			name:   "availability false is a real constraint",
			filter: services.MenuFilter{Available: boolPtr(false)},
			want:   bson.M{"isAvailable": false},
		},
		{
			name:   "price range",
			filter: services.MenuFilter{MinPrice: floatPtr(5), MaxPrice: floatPtr(20)},
			want:   bson.M{"price": bson.M{"$gte": 5.0, "$lte": 20.0}},
		},
		{
			name:   "min price only",
			filter: services.MenuFilter{MinPrice: floatPtr(10)},
			want:   bson.M{"price": bson.M{"$gte": 10.0}},
		},
		{
			name: "all constraints combined",
			filter: services.MenuFilter{
				Category:  "Main Course",
				Available: boolPtr(true),
				MaxPrice:  floatPtr(30),
			},
			want: bson.M{
				"category":    "Main Course",
				"isAvailable": true,
				"price":       bson.M{"$lte": 30.0},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, buildMenuFilter(tc.filter))
		})
	}
}

func TestBuildMenuUpdate_OnlySetFieldsIncluded(t *testing.T) {
	name := "Renamed"
	set := buildMenuUpdate(services.MenuItemUpdate{
		Name:  &name,
		Price: floatPtr(9.99),
	})

	require.Equal(t, bson.D{
		{Key: "name", Value: "Renamed"},
		{Key: "price", Value: 9.99},
	}, set)
}

func TestBuildMenuUpdate_EmptyUpdate(t *testing.T) {
	require.Empty(t, buildMenuUpdate(services.MenuItemUpdate{}))
}

func TestTopSellersPipeline_ProjectsDashboardShape(t *testing.T) {
	pipeline := topSellersPipeline("menuitems", 5)
	require.Len(t, pipeline, 7)

	project := pipeline[len(pipeline)-1]
	require.Equal(t, "$project", project[0].Key)

	fields := project[0].Value.(bson.D)
	keys := make([]string, 0, len(fields))
	for _, field := range fields {
		keys = append(keys, field.Key)
	}
	require.Equal(t, []string{"_id", "menuItemId", "name", "category", "price", "totalSold"}, keys)
}
