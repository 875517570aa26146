package post

import (
	"testing"

	"github.com/anzhiyu-c/anheyu-post/pkg/constant"
	"github.com/anzhiyu-c/anheyu-post/pkg/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFieldsPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		params   SubmitParams
		location model.ErrorLocation
		message  string
	}{
		{name: "全部缺失", params: SubmitParams{}, location: model.ErrorLocationTitle, message: MessageTitleRequired},
		{name: "缺 title", params: SubmitParams{Author: "a", Content: "c"}, location: model.ErrorLocationTitle, message: MessageTitleRequired},
		{name: "缺 title 和 author", params: SubmitParams{Content: "c"}, location: model.ErrorLocationTitle, message: MessageTitleRequired},
		{name: "缺 title 和 content", params: SubmitParams{Author: "a"}, location: model.ErrorLocationTitle, message: MessageTitleRequired},
		{name: "缺 author", params: SubmitParams{Title: "t", Content: "c"}, location: model.ErrorLocationAuthor, message: MessageAuthorRequired},
		{name: "缺 author 和 content", params: SubmitParams{Title: "t"}, location: model.ErrorLocationAuthor, message: MessageAuthorRequired},
		{name: "缺 content", params: SubmitParams{Title: "t", Author: "a"}, location: model.ErrorLocationContent, message: MessageContentRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blogErr := ValidateFields(tt.params)
			require.NotNil(t, blogErr)
			assert.Equal(t, tt.location, blogErr.Location)
			assert.Equal(t, tt.message, blogErr.Message)
			assert.ErrorIs(t, blogErr, constant.ErrBadRequest)
		})
	}
}

func TestValidateFieldsAllPresent(t *testing.T) {
	assert.Nil(t, ValidateFields(SubmitParams{Title: "t", Author: "a", Content: "c"}))
}
