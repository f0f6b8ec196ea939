package rowsource

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.app/research/model"
)

func TestMapRows(t *testing.T) {
	testCases := []struct {
		name     string
		rows     [][]any
		expected []model.WorkItem
	}{
		{
			name: "full rows",
			rows: [][]any{
				{"antique appraisal", "Antique Appraisal Guide", "101", "done"},
				{"estate sales", "Estate Sales 101", "102", ""},
			},
			expected: []model.WorkItem{
				{Keyword: "antique appraisal", Title: "Antique Appraisal Guide", PostID: "101", Marker: "done"},
				{Keyword: "estate sales", Title: "Estate Sales 101", PostID: "102"},
			},
		},
		{
			name: "short rows are padded",
			rows: [][]any{
				{"vintage maps"},
				{"art restoration", "Art Restoration"},
			},
			expected: []model.WorkItem{
				{Keyword: "vintage maps"},
				{Keyword: "art restoration", Title: "Art Restoration"},
			},
		},
		{
			name: "cells are trimmed",
			rows: [][]any{
				{"  rare coins  ", "\tRare Coins\n", " 7 ", ""},
			},
			expected: []model.WorkItem{
				{Keyword: "rare coins", Title: "Rare Coins", PostID: "7"},
			},
		},
		{
			name: "non-string cells become empty",
			rows: [][]any{
				{42, "Numeric Keyword", 7.5, nil},
			},
			expected: []model.WorkItem{
				{Title: "Numeric Keyword"},
			},
		},
		{
			name:     "no rows",
			rows:     nil,
			expected: []model.WorkItem{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapRows(tc.rows))
		})
	}
}
