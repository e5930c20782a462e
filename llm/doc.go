// Package llm provides a provider-neutral abstraction layer for chat-completion APIs.
//
// This package defines the common request and response shapes shared by every
// vendor adapter under llm/<vendor>, the error taxonomy adapters translate
// failures into, and the static model metadata tables they attach to responses.
//
// # Core Concepts
//
//  1. Messages: Message mirrors the OpenAI chat message (role, content, name,
//     tool_calls, tool_call_id). Roles are restricted to system, user,
//     assistant, function and tool.
//
//  2. Provider Interface: Provider exposes CreateCompletion and GetModels.
//     Streaming requests are consumed inside the adapter and returned as one
//     aggregated response built with StreamAccumulator. Embedder is the
//     optional embeddings capability.
//
//  3. Model tables: every adapter compiles in a ModelTable. Responses get
//     tokenLimit and maxOutputTokens by exact model id lookup; unknown ids
//     leave both unset.
//
//  4. Middleware: Middleware decorates CreateCompletion with logging or
//     metrics without touching adapters.
//
//  5. Errors: HandleError maps HTTP failures to *Error, preferring the
//     vendor's own error message when the body carries one. Nothing retries.
//
// Usage Example
//
//	provider, err := multillm.New("openai", multillm.Options{APIKey: key}, logger)
//	if err != nil {
//	    return err
//	}
//	provider = llm.WrapWithMiddleware(provider, llm.LoggingMiddleware("openai", logger))
//
//	resp, err := provider.CreateCompletion(ctx, &llm.ChatCompletionRequest{
//	    Messages: []llm.Message{llm.NewTextMessage(llm.RoleUser, "Hello!")},
//	})
//
// # Extension Points
//
// To add a new provider:
//  1. Implement the Provider interface
//  2. Compile in a ModelTable for its models
//  3. Translate between vendor types and llm types
//  4. Funnel failures through HandleError
package llm
