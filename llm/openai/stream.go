package openai

import (
	"errors"
	"io"

	"github.com/codeboltai/codebolt-go/llm"
	openai "github.com/sashabaranov/go-openai"
)

// aggregateStream drains a chat completion stream into one response.
func aggregateStream(stream *openai.ChatCompletionStream) (*llm.ChatCompletionResponse, error) {
	defer stream.Close()

	acc := llm.NewStreamAccumulator()
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		acc.SetMeta(chunk.ID, chunk.Model, chunk.Created)
		if chunk.Usage != nil {
			acc.SetUsage(llm.Usage{
				PromptTokens:     chunk.Usage.PromptTokens,
				CompletionTokens: chunk.Usage.CompletionTokens,
				TotalTokens:      chunk.Usage.TotalTokens,
			})
		}

		for _, choice := range chunk.Choices {
			if choice.Index != 0 {
				continue
			}
			acc.AddText(choice.Delta.Content)
			for i, tc := range choice.Delta.ToolCalls {
				index := i
				if tc.Index != nil {
					index = *tc.Index
				}
				acc.AddToolCallDelta(index, tc.ID, tc.Function.Name, tc.Function.Arguments)
			}
			acc.SetFinishReason(string(choice.FinishReason))
		}
	}

	return acc.Response(), nil
}
