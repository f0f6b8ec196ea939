package research

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/research/mocks/store/content_store"
	"encore.app/research/model"
	"encore.app/research/store"
)

func TestGetSummary(t *testing.T) {
	summaryLog := model.SummaryLog{
		Summary: model.Summary{Total: 2, Successful: 1, Failed: 1},
		Results: []model.ItemResult{
			{Keyword: "antique appraisal", Success: true},
			{Keyword: "estate sales", Success: false, Error: "paa service down"},
		},
	}
	storedSummary, err := json.Marshal(summaryLog)
	assert.NoError(t, err)

	testCases := []struct {
		name          string
		date          string
		mockPayload   json.RawMessage
		mockError     error
		expectGetCall bool
		expectedCode  errs.ErrCode
	}{
		{
			name:          "successful_retrieval",
			date:          "2025-06-15",
			mockPayload:   storedSummary,
			expectGetCall: true,
		},
		{
			name:         "invalid_date_format",
			date:         "15-06-2025",
			expectedCode: errs.InvalidArgument,
		},
		{
			name:         "not_a_date",
			date:         "yesterday",
			expectedCode: errs.InvalidArgument,
		},
		{
			name:          "summary_not_found",
			date:          "2025-06-14",
			mockError:     store.ErrNotFound,
			expectGetCall: true,
			expectedCode:  errs.NotFound,
		},
		{
			name:          "storage_unavailable",
			date:          "2025-06-15",
			mockError:     errors.New("bucket read failed"),
			expectGetCall: true,
			expectedCode:  errs.Unavailable,
		},
		{
			name:          "malformed_stored_summary",
			date:          "2025-06-15",
			mockPayload:   json.RawMessage(`[1,2,3]`),
			expectGetCall: true,
			expectedCode:  errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := content_store.NewMockContentStore(ctrl)
			if tc.expectGetCall {
				mockStore.EXPECT().
					Get(gomock.Any(), "logs/summary/"+tc.date+".json").
					Return(tc.mockPayload, tc.mockError)
			}

			service := &Service{store: mockStore}

			resp, err := service.GetSummary(context.Background(), tc.date)

			if tc.expectedCode != 0 {
				assert.Nil(t, resp)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.date, resp.Date)
			assert.Equal(t, summaryLog.Summary, resp.Summary)
			assert.Equal(t, summaryLog.Results, resp.Results)
		})
	}
}
