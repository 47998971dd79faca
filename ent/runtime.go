// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prepdeck/prepdeck/ent/credential"
	"github.com/prepdeck/prepdeck/ent/draft"
	"github.com/prepdeck/prepdeck/ent/llmcall"
	"github.com/prepdeck/prepdeck/ent/schema"
	"github.com/prepdeck/prepdeck/ent/sessionrecord"
	"github.com/prepdeck/prepdeck/ent/setting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	credentialFields := schema.Credential{}.Fields()
	_ = credentialFields
	// credentialDescToken is the schema descriptor for token field.
	credentialDescToken := credentialFields[0].Descriptor()
	// credential.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	credential.TokenValidator = credentialDescToken.Validators[0].(func(string) error)
	// credentialDescSavedAt is the schema descriptor for saved_at field.
	credentialDescSavedAt := credentialFields[3].Descriptor()
	// credential.DefaultSavedAt holds the default value on creation for the saved_at field.
	credential.DefaultSavedAt = credentialDescSavedAt.Default.(func() time.Time)
	draftFields := schema.Draft{}.Fields()
	_ = draftFields
	// draftDescSessionID is the schema descriptor for session_id field.
	draftDescSessionID := draftFields[0].Descriptor()
	// draft.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	draft.SessionIDValidator = draftDescSessionID.Validators[0].(func(string) error)
	// draftDescUpdatedAt is the schema descriptor for updated_at field.
	draftDescUpdatedAt := draftFields[4].Descriptor()
	// draft.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	draft.DefaultUpdatedAt = draftDescUpdatedAt.Default.(func() time.Time)
	// draft.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	draft.UpdateDefaultUpdatedAt = draftDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmcallFields := schema.LLMCall{}.Fields()
	_ = llmcallFields
	// llmcallDescProvider is the schema descriptor for provider field.
	llmcallDescProvider := llmcallFields[0].Descriptor()
	// llmcall.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmcall.ProviderValidator = llmcallDescProvider.Validators[0].(func(string) error)
	// llmcallDescModel is the schema descriptor for model field.
	llmcallDescModel := llmcallFields[1].Descriptor()
	// llmcall.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmcall.ModelValidator = llmcallDescModel.Validators[0].(func(string) error)
	// llmcallDescPurpose is the schema descriptor for purpose field.
	llmcallDescPurpose := llmcallFields[2].Descriptor()
	// llmcall.DefaultPurpose holds the default value on creation for the purpose field.
	llmcall.DefaultPurpose = llmcallDescPurpose.Default.(string)
	// llmcallDescInputTokens is the schema descriptor for input_tokens field.
	llmcallDescInputTokens := llmcallFields[3].Descriptor()
	// llmcall.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmcall.DefaultInputTokens = llmcallDescInputTokens.Default.(int)
	// llmcallDescOutputTokens is the schema descriptor for output_tokens field.
	llmcallDescOutputTokens := llmcallFields[4].Descriptor()
	// llmcall.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmcall.DefaultOutputTokens = llmcallDescOutputTokens.Default.(int)
	// llmcallDescLatencyMs is the schema descriptor for latency_ms field.
	llmcallDescLatencyMs := llmcallFields[5].Descriptor()
	// llmcall.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmcall.DefaultLatencyMs = llmcallDescLatencyMs.Default.(int64)
	// llmcallDescSuccess is the schema descriptor for success field.
	llmcallDescSuccess := llmcallFields[6].Descriptor()
	// llmcall.DefaultSuccess holds the default value on creation for the success field.
	llmcall.DefaultSuccess = llmcallDescSuccess.Default.(bool)
	// llmcallDescCreatedAt is the schema descriptor for created_at field.
	llmcallDescCreatedAt := llmcallFields[8].Descriptor()
	// llmcall.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmcall.DefaultCreatedAt = llmcallDescCreatedAt.Default.(func() time.Time)
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescSessionID is the schema descriptor for session_id field.
	sessionrecordDescSessionID := sessionrecordFields[0].Descriptor()
	// sessionrecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionrecord.SessionIDValidator = sessionrecordDescSessionID.Validators[0].(func(string) error)
	// sessionrecordDescSkipped is the schema descriptor for skipped field.
	sessionrecordDescSkipped := sessionrecordFields[7].Descriptor()
	// sessionrecord.DefaultSkipped holds the default value on creation for the skipped field.
	sessionrecord.DefaultSkipped = sessionrecordDescSkipped.Default.(int)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[2].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
}
