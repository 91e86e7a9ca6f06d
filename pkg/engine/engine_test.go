package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/message"
	"github.com/conductorhq/conductor/ent/queuejob"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/ent/runstep"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/llm"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/queue"
	"github.com/conductorhq/conductor/pkg/services"
	"github.com/conductorhq/conductor/pkg/tools"
	testdb "github.com/conductorhq/conductor/test/database"
)

// scriptStep produces one LLM response. Steps may have side effects, which
// lets a test cancel a run mid-loop or capture the request.
type scriptStep func(req llm.Request) (string, error)

// say returns a step that replies with fixed content.
func say(content string) scriptStep {
	return func(llm.Request) (string, error) { return content, nil }
}

// scriptedLLM replays a fixed sequence of responses. The engine consumes
// one step per Complete call, validator calls included.
type scriptedLLM struct {
	mu    sync.Mutex
	steps []scriptStep
	calls int
}

var _ llm.Client = (*scriptedLLM)(nil)

func (s *scriptedLLM) push(steps ...scriptStep) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, steps...)
}

func (s *scriptedLLM) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	s.mu.Lock()
	if s.calls >= len(s.steps) {
		n := s.calls
		s.mu.Unlock()
		return nil, fmt.Errorf("llm script exhausted after %d calls", n)
	}
	step := s.steps[s.calls]
	s.calls++
	s.mu.Unlock()

	content, err := step(req)
	if err != nil {
		return nil, err
	}
	return &llm.Response{Content: content, Model: "scripted"}, nil
}

func (s *scriptedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// engineFixture wires a real database, queue, and services behind an
// engine whose only fake is the LLM.
type engineFixture struct {
	client   *ent.Client
	queue    *queue.Queue
	runs     *services.RunService
	steps    *services.StepService
	messages *services.MessageService
	registry *tools.Registry
	llm      *scriptedLLM
	engine   *Engine
	channel  *ent.Channel
	cfg      config.EngineConfig
}

func newEngineFixture(t *testing.T, cfg *config.EngineConfig) *engineFixture {
	t.Helper()
	ctx := context.Background()

	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client

	engineCfg := config.DefaultEngineConfig()
	if cfg != nil {
		engineCfg = *cfg
	}

	channels := services.NewChannelService(client)
	ch, err := channels.GetOrCreate(ctx, "user-1", "web", "")
	require.NoError(t, err)

	registry := tools.NewRegistry(nil)
	for _, tool := range tools.Builtins() {
		require.NoError(t, registry.Register(tool))
	}

	f := &engineFixture{
		client:   client,
		queue:    queue.New(client),
		runs:     services.NewRunService(client),
		steps:    services.NewStepService(client),
		messages: services.NewMessageService(client),
		registry: registry,
		llm:      &scriptedLLM{},
		channel:  ch,
		cfg:      engineCfg,
	}
	f.engine = New(Deps{
		Runs:     f.runs,
		Steps:    f.steps,
		Messages: f.messages,
		Memories: services.NewMemoryService(client),
		Channels: channels,
		Triggers: services.NewTriggerService(client),
		Queue:    f.queue,
		LLM:      f.llm,
		Tools:    registry,
		Config:   &f.cfg,
		PodID:    "test-pod",
	})
	return f
}

func (f *engineFixture) newCoordinator(t *testing.T, inputText string) *ent.Run {
	t.Helper()
	r, err := f.runs.CreateCoordinator(context.Background(), models.CreateRunRequest{
		TenantID:  "acme",
		AgentID:   "conductor",
		UserID:    "user-1",
		ChannelID: f.channel.ID,
		InputText: inputText,
	})
	require.NoError(t, err)
	return r
}

func (f *engineFixture) newSubagent(t *testing.T, parent *ent.Run, task string, allowedTools []string) *ent.Run {
	t.Helper()
	children, err := f.runs.CreateSubagents(context.Background(), parent, []services.CreateChildParams{{
		InputText:    task,
		AllowedTools: allowedTools,
		Input:        models.RunInput{AgentLevel: 1},
	}})
	require.NoError(t, err)
	return children[0]
}

func (f *engineFixture) reload(t *testing.T, runID string) *ent.Run {
	t.Helper()
	r, err := f.runs.GetRun(context.Background(), runID)
	require.NoError(t, err)
	return r
}

func (f *engineFixture) runSteps(t *testing.T, runID string) []*ent.RunStep {
	t.Helper()
	steps, err := f.steps.ListSteps(context.Background(), runID)
	require.NoError(t, err)
	return steps
}

func (f *engineFixture) outbound(t *testing.T) []*ent.Message {
	t.Helper()
	msgs, err := f.messages.ListRecentByChannel(context.Background(), f.channel.ID, 50)
	require.NoError(t, err)
	var out []*ent.Message
	for _, m := range msgs {
		if m.Direction == message.DirectionOutbound {
			out = append(out, m)
		}
	}
	return out
}

func (f *engineFixture) runJobs(t *testing.T, queueName string) []queue.RunJob {
	t.Helper()
	jobs, err := f.client.QueueJob.Query().
		Where(queuejob.QueueEQ(queueName)).
		Order(ent.Asc(queuejob.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	out := make([]queue.RunJob, 0, len(jobs))
	for _, j := range jobs {
		var rj queue.RunJob
		require.NoError(t, json.Unmarshal(j.Payload, &rj))
		out = append(out, rj)
	}
	return out
}

func hasJobFor(jobs []queue.RunJob, runID string) bool {
	for _, j := range jobs {
		if j.RunID == runID {
			return true
		}
	}
	return false
}

func findEvent(steps []*ent.RunStep, event string) *ent.RunStep {
	for _, s := range steps {
		if s.Type == runstep.TypeMessage && s.Result != nil && s.Result["event"] == event {
			return s
		}
	}
	return nil
}

func countEvents(steps []*ent.RunStep, event string) int {
	n := 0
	for _, s := range steps {
		if s.Type == runstep.TypeMessage && s.Result != nil && s.Result["event"] == event {
			n++
		}
	}
	return n
}

func countType(steps []*ent.RunStep, typ runstep.Type) int {
	n := 0
	for _, s := range steps {
		if s.Type == typ {
			n++
		}
	}
	return n
}

func lastFinish(steps []*ent.RunStep) *ent.RunStep {
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i].Type == runstep.TypeFinish {
			return steps[i]
		}
	}
	return nil
}

// coordinatorNotes is the minimal note sequence that satisfies the
// coordinator's rationale gate.
func coordinatorNotes() []scriptStep {
	return []scriptStep{
		say(`{"type":"note","category":"requirements","content":"Success criteria: deliver one short answer naming the result. Output format: plain text."}`),
		say(`{"type":"note","category":"plan","content":"1. Push the remaining work onto the queue with queue_op.\n2. spawn_subagent for the lookup with the user request as context.\n3. Wait for the worker and check what comes back.\n4. Compare the output against the success criteria.\n5. deliver_subagent_output and finish with the result."}`),
		say(`{"type":"note","category":"artifact","content":"Kick off the first delegation right away."}`),
	}
}

// subagentNotes is the minimal note sequence for a worker.
func subagentNotes() []scriptStep {
	return []scriptStep{
		say(`{"type":"note","category":"requirements","content":"Success criteria: report the value as one line of plain text."}`),
		say(`{"type":"note","category":"plan","content":"1. Call the tool for the value.\n2. Report the result as one line."}`),
		say(`{"type":"note","category":"artifact","content":"Query the tool first."}`),
	}
}

func TestExecuteRunCompletesCoordinator(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	r := f.newCoordinator(t, "Summarize the team motto in one line")

	f.llm.push(coordinatorNotes()...)
	f.llm.push(
		say(`{"type":"finish","output":"The motto: ship small, ship often."}`),
		say(`{"decision":"send"}`), // validator verdict
	)

	require.NoError(t, f.engine.ExecuteRun(ctx, r.ID))

	got := f.reload(t, r.ID)
	assert.Equal(t, run.StatusCompleted, got.Status)
	assert.Equal(t, "The motto: ship small, ship often.", got.OutputText)
	assert.Nil(t, got.WakeAt)
	assert.Nil(t, got.ClaimedBy)

	steps := f.runSteps(t, r.ID)
	assert.Equal(t, 4, countType(steps, runstep.TypeAssistantMessage))
	assert.Equal(t, 3, countType(steps, runstep.TypeNote))
	assert.Equal(t, 1, countType(steps, runstep.TypeValidationMissing))
	assert.Equal(t, 1, countType(steps, runstep.TypeFinish))
	for _, s := range steps {
		if s.Type == runstep.TypeNote {
			assert.Equal(t, runstep.StatusCompleted, s.Status)
		}
	}

	validation := findEvent(steps, models.EventValidationResult)
	require.NotNil(t, validation)
	assert.Equal(t, "send", validation.Result["decision"])

	msgs := f.outbound(t)
	require.Len(t, msgs, 1)
	assert.Equal(t, "The motto: ship small, ship often.", msgs[0].Content)
	assert.Equal(t, message.DeliveryStatusDelivered, msgs[0].DeliveryStatus)

	assert.Equal(t, 5, f.llm.callCount())
}

func TestQueueOpUpdatesCoordinatorQueue(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	r := f.newCoordinator(t, "Track the follow-up tasks for this request")

	f.llm.push(coordinatorNotes()...)
	f.llm.push(
		say(`{"type":"queue_op","action":"push","items":["write the summary","send the recap"]}`),
		say(`{"type":"queue_op","action":"shift"}`),
		say(`{"type":"finish"}`), // empty output, validator not consulted
	)

	require.NoError(t, f.engine.ExecuteRun(ctx, r.ID))

	got := f.reload(t, r.ID)
	assert.Equal(t, run.StatusCompleted, got.Status)
	assert.Equal(t, "", got.OutputText)
	assert.Equal(t, []string{"send the recap"}, got.Input.State.Queue)

	steps := f.runSteps(t, r.ID)
	var ops []*ent.RunStep
	for _, s := range steps {
		if s.Type == runstep.TypeMessage && s.Result != nil && s.Result["event"] == models.EventQueueOp {
			ops = append(ops, s)
		}
	}
	require.Len(t, ops, 2)
	assert.Equal(t, "push", ops[0].Result["action"])
	assert.EqualValues(t, 2, ops[0].Result["size"])
	assert.Equal(t, "shift", ops[1].Result["action"])
	assert.Equal(t, "write the summary", ops[1].Result["popped"])
	assert.EqualValues(t, 1, ops[1].Result["size"])

	// Finishing with no output sends nothing to the user.
	assert.Empty(t, f.outbound(t))
	assert.Equal(t, 6, f.llm.callCount())
}

func TestCoordinatorToolCallAutoSpawnsWorker(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	parent := f.newCoordinator(t, "What time is it right now in UTC?")

	// Phase 1: the coordinator tries to call a tool directly and gets a
	// one-shot worker instead.
	f.llm.push(coordinatorNotes()...)
	f.llm.push(say(`{"type":"tool_call","name":"clock.now","args":{}}`))

	require.NoError(t, f.engine.ExecuteRun(ctx, parent.ID))

	gotParent := f.reload(t, parent.ID)
	assert.Equal(t, run.StatusWaiting, gotParent.Status)
	require.NotNil(t, gotParent.WakeReason)
	assert.Equal(t, models.WakeReasonSubagentWatchdog, *gotParent.WakeReason)
	require.NotNil(t, gotParent.WakeAt)
	assert.WithinDuration(t, time.Now().Add(f.cfg.WatchdogDelay), *gotParent.WakeAt, 10*time.Second)

	children, err := f.runs.ListChildren(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	child := children[0]
	assert.Equal(t, run.KindSubagent, child.Kind)
	assert.Equal(t, run.StatusPending, child.Status)
	require.NotNil(t, child.Profile)
	assert.Equal(t, "auto_tool", *child.Profile)
	assert.Equal(t, []string{"clock.now"}, child.AllowedTools)
	assert.Equal(t, 1, child.Input.AgentLevel)
	assert.False(t, child.Input.AllowSubagents)
	assert.Contains(t, child.InputText, "clock.now")

	roles := make(map[string]string, len(child.Input.Context))
	for _, c := range child.Input.Context {
		roles[c.Role] = c.Content
	}
	assert.Equal(t, "{}", roles["tool_args"])
	assert.Contains(t, roles["user_request"], "What time is it")

	parentSteps := f.runSteps(t, parent.ID)
	autoSpawn := findEvent(parentSteps, models.EventAutoSpawnFromToolCall)
	require.NotNil(t, autoSpawn)
	assert.Equal(t, "clock.now", autoSpawn.Result["tool"])
	assert.Equal(t, child.ID, autoSpawn.Result["runId"])
	require.NotNil(t, findEvent(parentSteps, models.EventSpawnSubagents))

	assert.True(t, hasJobFor(f.runJobs(t, queue.QueueRuns), child.ID), "child run job enqueued")
	assert.True(t, hasJobFor(f.runJobs(t, queue.QueueWake), parent.ID), "parent watchdog wake enqueued")

	// Phase 2: the worker calls the tool and finishes; the parent wakes.
	f.llm.push(subagentNotes()...)
	f.llm.push(
		say(`{"type":"tool_call","name":"clock.now","args":{}}`),
		say(`{"type":"finish","output":"The clock tool returned the current UTC time; see the timestamp for the exact reading."}`),
		say(`{"decision":"send"}`),
	)

	require.NoError(t, f.engine.ExecuteRun(ctx, child.ID))

	gotChild := f.reload(t, child.ID)
	assert.Equal(t, run.StatusCompleted, gotChild.Status)
	assert.NotEmpty(t, gotChild.OutputText)

	childSteps := f.runSteps(t, child.ID)
	assert.Equal(t, 1, countType(childSteps, runstep.TypeToolCall))
	assert.Equal(t, 1, countType(childSteps, runstep.TypeToolResult))

	gotParent = f.reload(t, parent.ID)
	assert.Equal(t, run.StatusPending, gotParent.Status, "child completion wakes the parent")
	assert.Nil(t, gotParent.WakeAt)

	parentSteps = f.runSteps(t, parent.ID)
	result := findEvent(parentSteps, models.EventSubagentResult)
	require.NotNil(t, result)
	assert.Equal(t, child.ID, result.Result["runId"])
	assert.Equal(t, "completed", result.Result["status"])

	// Phase 3: the parent resumes from its step log, delivers the child's
	// output, and finishes without repeating the validated text.
	f.llm.push(
		say(fmt.Sprintf(`{"type":"deliver_subagent_output","runId":%q}`, child.ID)),
		say(`{"type":"finish"}`),
	)

	require.NoError(t, f.engine.ExecuteRun(ctx, parent.ID))

	gotParent = f.reload(t, parent.ID)
	assert.Equal(t, run.StatusCompleted, gotParent.Status)

	msgs := f.outbound(t)
	require.Len(t, msgs, 1)
	assert.Equal(t, gotChild.OutputText, msgs[0].Content)

	assert.Equal(t, 12, f.llm.callCount())
}

func TestSubagentCannotMessageUser(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	parent := f.newCoordinator(t, "Coordinate the status update")
	child := f.newSubagent(t, parent, "Compile the short status update", nil)

	f.llm.push(subagentNotes()...)
	f.llm.push(
		say(`{"type":"send_message","message":"Here is my status update for you to read."}`),
		say(`{"type":"finish","output":"Status update compiled: all three workstreams are on track for Friday."}`),
		say(`{"decision":"send"}`),
	)

	require.NoError(t, f.engine.ExecuteRun(ctx, child.ID))

	got := f.reload(t, child.ID)
	assert.Equal(t, run.StatusCompleted, got.Status)

	steps := f.runSteps(t, child.ID)
	blocked := findEvent(steps, models.EventActionBlocked)
	require.NotNil(t, blocked)
	assert.Equal(t, "role_violation", blocked.Result["reason"])
	assert.Contains(t, blocked.Result["detail"], "cannot message the user")

	note := findEvent(steps, models.EventSystemNote)
	require.NotNil(t, note)
	assert.Contains(t, note.Result["content"], "your parent will deliver it")

	// Nothing went to the channel; the output travels via the parent.
	assert.Empty(t, f.outbound(t))

	parentSteps := f.runSteps(t, parent.ID)
	result := findEvent(parentSteps, models.EventSubagentResult)
	require.NotNil(t, result)
	assert.Contains(t, result.Result["output"], "Status update compiled")

	assert.Equal(t, 6, f.llm.callCount())
}

func TestBudgetExtensionRefusedWithoutProgress(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	cfg.MaxIterations = 4
	cfg.MinIterations = 1
	cfg.MaxIterationsHardCap = 6

	f := newEngineFixture(t, &cfg)
	ctx := context.Background()
	r := f.newCoordinator(t, "Draft an agenda for the planning offsite")

	f.llm.push(coordinatorNotes()...)
	f.llm.push(
		// Iteration 4 burns the budget on a question.
		say(`{"type":"send_message","message":"Should the offsite agenda focus on planning or on team introductions?"}`),
		// Iteration 5 is over budget and gets blocked.
		say(`{"type":"send_message","message":"Do you want me to proceed with a one-day draft agenda now?"}`),
		// The extension goes through, but the recent window shows no
		// progress, so the engine finishes instead of granting more spin.
		say(`{"type":"set_run_limits","maxIterations":6,"reason":"need more iterations to finish the agenda"}`),
	)

	require.NoError(t, f.engine.ExecuteRun(ctx, r.ID))

	got := f.reload(t, r.ID)
	assert.Equal(t, run.StatusCompleted, got.Status)
	assert.Equal(t,
		"I had to stop early: the budget was extended but recent iterations show no progress.",
		got.OutputText)
	assert.Equal(t, "budget_exceeded", got.Input.State.LastBlockReason)

	steps := f.runSteps(t, r.ID)

	blocked := findEvent(steps, models.EventActionBlocked)
	require.NotNil(t, blocked)
	assert.Equal(t, "budget_exceeded", blocked.Result["reason"])
	assert.Equal(t, runstep.StatusFailed, blocked.Status)

	decision := findEvent(steps, models.EventBudgetDecision)
	require.NotNil(t, decision)
	assert.Equal(t, "extend", decision.Result["action"])
	assert.EqualValues(t, 6, decision.Result["maxIterations"])

	finish := lastFinish(steps)
	require.NotNil(t, finish)
	assert.Equal(t, models.FinishReasonBudgetStuck, finish.Result["reason"])
	assert.Equal(t, true, finish.Result["forced"])

	msgs := f.outbound(t)
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Content, "offsite agenda")
	assert.Equal(t, got.OutputText, msgs[1].Content)

	// No validator calls: the question skipped validation, the second
	// send was blocked before it, and forced finishes are not reviewed.
	assert.Equal(t, 6, f.llm.callCount())
}

func TestRepeatedToolCallLoopFailsRun(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()

	var pokes atomic.Int64
	require.NoError(t, f.registry.Register(tools.Tool{
		Name:             "probe",
		ShortDescription: "Test probe returning a changing counter",
		Commands: []tools.Command{{
			Name:        "poke",
			Description: "Return the next counter value",
			Handler: func(_ context.Context, _ tools.ToolContext, _ map[string]any) (tools.Result, error) {
				return tools.Result{Success: true, Result: map[string]any{"count": pokes.Add(1)}}, nil
			},
		}},
	}))

	parent := f.newCoordinator(t, "Probe the counter")
	child := f.newSubagent(t, parent, "Use the probe tool to fetch the current counter value", []string{"probe.poke"})

	f.llm.push(subagentNotes()...)
	call := `{"type":"tool_call","name":"probe.poke","args":{"target":"counter"}}`
	f.llm.push(say(call), say(call), say(call))

	require.NoError(t, f.engine.ExecuteRun(ctx, child.ID))

	got := f.reload(t, child.ID)
	assert.Equal(t, run.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "repeated tool call loop: probe.poke", *got.ErrorMessage)

	steps := f.runSteps(t, child.ID)
	loop := findEvent(steps, models.EventLoopDetected)
	require.NotNil(t, loop)
	assert.Equal(t, "probe.poke", loop.Result["name"])
	assert.Equal(t, runstep.StatusFailed, loop.Status)

	// The third identical call is rejected before execution.
	assert.Equal(t, 2, countType(steps, runstep.TypeToolCall))
	assert.Equal(t, 2, countType(steps, runstep.TypeToolResult))
	assert.EqualValues(t, 2, pokes.Load())

	parentSteps := f.runSteps(t, parent.ID)
	failed := findEvent(parentSteps, models.EventSubagentFailed)
	require.NotNil(t, failed)
	assert.Equal(t, child.ID, failed.Result["runId"])

	// Failures of subagents never reach the user directly.
	assert.Empty(t, f.outbound(t))
	assert.True(t, hasJobFor(f.runJobs(t, queue.QueueRuns), parent.ID), "parent re-enqueued")
	assert.Equal(t, 6, f.llm.callCount())
}

func TestRequestParentReplyCycle(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	parent := f.newCoordinator(t, "Coordinate a short reply to the customer")
	child := f.newSubagent(t, parent, "Draft a short reply to the customer email", nil)

	// Phase 1: the child asks its parent and parks.
	f.llm.push(subagentNotes()...)
	f.llm.push(say(`{"type":"request_parent","message":"Which tone should the reply use?"}`))

	require.NoError(t, f.engine.ExecuteRun(ctx, child.ID))

	gotChild := f.reload(t, child.ID)
	assert.Equal(t, run.StatusWaiting, gotChild.Status)
	require.NotNil(t, gotChild.WakeReason)
	assert.Equal(t, models.WakeReasonWaitingForParent, *gotChild.WakeReason)
	assert.Nil(t, gotChild.WakeAt, "parent replies arrive as events, not deadlines")
	assert.True(t, gotChild.Input.State.WaitingForParent)
	assert.Equal(t, "Which tone should the reply use?", gotChild.Input.State.LastRequestParentMessage)

	gotParent := f.reload(t, parent.ID)
	require.Len(t, gotParent.Input.State.Inbox, 1)
	assert.Equal(t, child.ID, gotParent.Input.State.Inbox[0].FromRunID)
	assert.True(t, hasJobFor(f.runJobs(t, queue.QueueRuns), parent.ID))

	// Phase 2: the parent answers, re-opens the child, and sleeps while
	// the child works.
	f.llm.push(coordinatorNotes()...)
	f.llm.push(
		say(fmt.Sprintf(`{"type":"reply_subagent","runId":%q,"message":"Use a warm, casual tone."}`, child.ID)),
		say(`{"type":"sleep"}`),
	)

	require.NoError(t, f.engine.ExecuteRun(ctx, parent.ID))

	gotParent = f.reload(t, parent.ID)
	assert.Equal(t, run.StatusWaiting, gotParent.Status)
	require.NotNil(t, gotParent.WakeReason)
	assert.Equal(t, models.WakeReasonSleep, *gotParent.WakeReason)
	require.NotNil(t, gotParent.WakeAt)
	assert.WithinDuration(t, time.Now().Add(f.cfg.WatchdogDelay), *gotParent.WakeAt, 10*time.Second)

	gotChild = f.reload(t, child.ID)
	assert.Equal(t, run.StatusPending, gotChild.Status)
	assert.False(t, gotChild.Input.State.WaitingForParent)
	require.Len(t, gotChild.Input.State.Inbox, 1)
	assert.Equal(t, parent.ID, gotChild.Input.State.Inbox[0].FromRunID)
	assert.Equal(t, "Use a warm, casual tone.", gotChild.Input.State.Inbox[0].Message)
	assert.True(t, hasJobFor(f.runJobs(t, queue.QueueRuns), child.ID))
	require.NotNil(t, findEvent(f.runSteps(t, parent.ID), models.EventReplySubagent))

	// Phase 3: the child resumes from its log and finishes, which wakes
	// the sleeping parent.
	f.llm.push(
		say(`{"type":"finish","output":"Draft reply: thanks for reaching out; we will follow up tomorrow with full details, in a warm tone."}`),
		say(`{"decision":"send"}`),
	)

	require.NoError(t, f.engine.ExecuteRun(ctx, child.ID))

	gotChild = f.reload(t, child.ID)
	assert.Equal(t, run.StatusCompleted, gotChild.Status)

	gotParent = f.reload(t, parent.ID)
	assert.Equal(t, run.StatusPending, gotParent.Status)
	assert.Nil(t, gotParent.WakeAt)
	require.NotNil(t, findEvent(f.runSteps(t, parent.ID), models.EventSubagentResult))

	assert.Equal(t, 11, f.llm.callCount())
}

func TestRepeatedParentRequestForcesFinish(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	parent := f.newCoordinator(t, "Summarize the files")
	child := f.newSubagent(t, parent, "Summarize the most important file", nil)

	question := "Which file should I summarize first?"

	f.llm.push(subagentNotes()...)
	f.llm.push(say(fmt.Sprintf(`{"type":"request_parent","message":%q}`, question)))
	require.NoError(t, f.engine.ExecuteRun(ctx, child.ID))
	require.Equal(t, run.StatusWaiting, f.reload(t, child.ID).Status)

	// The parent answers without actually deciding.
	require.NoError(t, f.runs.ClearWaitingForParent(ctx, child.ID, models.InboxEntry{
		FromRunID: parent.ID,
		Message:   "Whichever seems most important.",
		At:        time.Now().UTC(),
	}))

	// Asking the same question again ends the run instead of ping-ponging.
	f.llm.push(say(fmt.Sprintf(`{"type":"request_parent","message":%q}`, question)))
	require.NoError(t, f.engine.ExecuteRun(ctx, child.ID))

	got := f.reload(t, child.ID)
	assert.Equal(t, run.StatusCompleted, got.Status)
	assert.Equal(t,
		"I had to stop early: the same question was asked twice; the parent's answer did not change.",
		got.OutputText)
	assert.Equal(t, 1, got.Input.State.RequestParentRepeatCount)

	steps := f.runSteps(t, child.ID)
	repeat := findEvent(steps, models.EventRequestParentRepeat)
	require.NotNil(t, repeat)
	assert.Equal(t, runstep.StatusFailed, repeat.Status)

	finish := lastFinish(steps)
	require.NotNil(t, finish)
	assert.Equal(t, models.FinishReasonParentRepeat, finish.Result["reason"])

	// Only the first ask reached the parent's inbox.
	gotParent := f.reload(t, parent.ID)
	assert.Len(t, gotParent.Input.State.Inbox, 1)
	require.NotNil(t, findEvent(f.runSteps(t, parent.ID), models.EventSubagentResult))

	assert.Equal(t, 5, f.llm.callCount())
}

func TestUnparseableResponsesFailRun(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	r := f.newCoordinator(t, "Hello there")

	prose := say("I think we should consider the options carefully before deciding anything.")
	f.llm.push(prose, prose, prose)

	require.NoError(t, f.engine.ExecuteRun(ctx, r.ID))

	got := f.reload(t, r.ID)
	assert.Equal(t, run.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "model did not produce a valid command", *got.ErrorMessage)

	steps := f.runSteps(t, r.ID)
	assert.Equal(t, 0, countType(steps, runstep.TypeAssistantMessage))
	assert.Equal(t, 3, countEvents(steps, models.EventSystemNote))
	note := findEvent(steps, models.EventSystemNote)
	require.NotNil(t, note)
	assert.Contains(t, note.Result["content"], "not a valid command")

	msgs := f.outbound(t)
	require.Len(t, msgs, 1)
	assert.Equal(t, failureMessage, msgs[0].Content)

	assert.Equal(t, 3, f.llm.callCount())
}

func TestCoordinatorSleepWithoutChildrenBlocked(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	r := f.newCoordinator(t, "Wait for something to happen")

	f.llm.push(coordinatorNotes()...)
	f.llm.push(
		say(`{"type":"sleep","delaySeconds":60}`),
		say(`{"type":"finish","output":"There was nothing pending to wait for, so I am done."}`),
		say(`{"decision":"send"}`),
	)

	require.NoError(t, f.engine.ExecuteRun(ctx, r.ID))

	got := f.reload(t, r.ID)
	assert.Equal(t, run.StatusCompleted, got.Status)

	steps := f.runSteps(t, r.ID)
	blocked := findEvent(steps, models.EventActionBlocked)
	require.NotNil(t, blocked)
	assert.Equal(t, "sleep_invalid", blocked.Result["reason"])
	assert.Contains(t, blocked.Result["detail"], "no active subagents")
	assert.Equal(t, 0, countEvents(steps, models.EventSleep))

	assert.Equal(t, 6, f.llm.callCount())
}

func TestExecuteRunSkipsUnclaimable(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.engine.ExecuteRun(ctx, "no-such-run"))
	assert.Equal(t, 0, f.llm.callCount())

	r := f.newCoordinator(t, "Cancelled before execution")
	_, err := f.runs.CancelCascade(ctx, r.ID)
	require.NoError(t, err)

	require.NoError(t, f.engine.ExecuteRun(ctx, r.ID))
	assert.Equal(t, run.StatusCancelled, f.reload(t, r.ID).Status)
	assert.Equal(t, 0, f.llm.callCount())
	assert.Empty(t, f.runSteps(t, r.ID))
}

func TestCancelledRunStopsAtIterationBoundary(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	r := f.newCoordinator(t, "Watch for cancellation")

	f.llm.push(coordinatorNotes()...)
	f.llm.push(func(llm.Request) (string, error) {
		// A cancel arriving mid-iteration is observed at the next
		// status refresh.
		if _, err := f.runs.CancelCascade(context.Background(), r.ID); err != nil {
			return "", err
		}
		return `{"type":"decision","content":"Checking the queue before the next step."}`, nil
	})

	require.NoError(t, f.engine.ExecuteRun(ctx, r.ID))

	got := f.reload(t, r.ID)
	assert.Equal(t, run.StatusCancelled, got.Status)

	steps := f.runSteps(t, r.ID)
	assert.Nil(t, lastFinish(steps), "no finish step on a cancelled run")
	assert.Equal(t, 1, countType(steps, runstep.TypeDecision))
	assert.Empty(t, f.outbound(t))

	// The full script was consumed: exactly one iteration ran after the
	// cancel before the loop noticed.
	assert.Equal(t, 4, f.llm.callCount())
}
