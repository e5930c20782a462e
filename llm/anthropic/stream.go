package anthropic

import (
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
	"github.com/codeboltai/codebolt-go/llm"
)

var nowUnix = func() int64 { return time.Now().Unix() }

// aggregateStream drains a Messages stream into one response.
func aggregateStream(stream *ssestream.Stream[anthropic.MessageStreamEventUnion]) (*llm.ChatCompletionResponse, error) {
	defer stream.Close()

	acc := llm.NewStreamAccumulator()
	var usage llm.Usage

	for stream.Next() {
		event := stream.Current()

		switch evt := event.AsAny().(type) {
		case anthropic.MessageStartEvent:
			acc.SetMeta(evt.Message.ID, string(evt.Message.Model), nowUnix())
			usage.PromptTokens = int(evt.Message.Usage.InputTokens)

		case anthropic.ContentBlockStartEvent:
			if block, ok := evt.ContentBlock.AsAny().(anthropic.ToolUseBlock); ok {
				acc.AddToolCallDelta(int(evt.Index), block.ID, block.Name, "")
			}

		case anthropic.ContentBlockDeltaEvent:
			switch d := evt.Delta.AsAny().(type) {
			case anthropic.TextDelta:
				acc.AddText(d.Text)
			case anthropic.InputJSONDelta:
				acc.AddToolCallDelta(int(evt.Index), "", "", d.PartialJSON)
			}

		case anthropic.MessageDeltaEvent:
			acc.SetFinishReason(finishReason(string(evt.Delta.StopReason)))
			usage.CompletionTokens = int(evt.Usage.OutputTokens)
		}
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}

	acc.SetUsage(usage)
	return acc.Response(), nil
}
