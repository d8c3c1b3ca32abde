package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:5000/mcp/stream", "MCP streamable HTTP endpoint")
	jobID := flag.String("job", "mock-1", "job id used for applications and candidate tests")
	flag.Parse()

	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "ats-adapter-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: *endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListJobs(ctx, session)
	testListApplications(ctx, session, *jobID)
	testCreateCandidate(ctx, session, *jobID)

	fmt.Println("\nAll tests completed")
}

func call(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) {
	fmt.Printf("\nTEST: %s\n", name)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		return
	}

	printResult(result)
	if result.IsError {
		fmt.Printf("%s returned an error envelope\n", name)
		return
	}
	fmt.Printf("%s passed\n", name)
}

func testListJobs(ctx context.Context, session *mcp.ClientSession) {
	call(ctx, session, "list_jobs", map[string]any{})
}

func testListApplications(ctx context.Context, session *mcp.ClientSession, jobID string) {
	call(ctx, session, "list_applications", map[string]any{"job_id": jobID})
}

func testCreateCandidate(ctx context.Context, session *mcp.ClientSession, jobID string) {
	call(ctx, session, "create_candidate", map[string]any{
		"name":       "Jane Doe",
		"email":      "jane@example.com",
		"phone":      "+1 555 0100",
		"resume_url": "https://example.com/jane.pdf",
		"job_id":     jobID,
	})
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
