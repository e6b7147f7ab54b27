package reducerpc

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tailored-agentic-units/reduction"
)

var (
	// ErrMissingAction is returned for requests without an action object.
	ErrMissingAction = errors.New("request has no action")

	// ErrMissingActionType is returned when the action has no string type.
	ErrMissingActionType = errors.New("action has no type")
)

func encodeRequest(state any, action reduction.Action) (*structpb.Struct, error) {
	stateValue, err := structpb.NewValue(state)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	payload, err := structpb.NewValue(action.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"state": stateValue,
		"action": structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"type":    structpb.NewStringValue(action.Type),
			"payload": payload,
		}}),
	}}, nil
}

func decodeRequest(msg *structpb.Struct) (any, reduction.Action, error) {
	fields := msg.GetFields()

	actionFields := fields["action"].GetStructValue().GetFields()
	if actionFields == nil {
		return nil, reduction.Action{}, ErrMissingAction
	}
	actionType, ok := actionFields["type"].GetKind().(*structpb.Value_StringValue)
	if !ok || actionType.StringValue == "" {
		return nil, reduction.Action{}, ErrMissingActionType
	}

	action := reduction.Action{
		Type:    actionType.StringValue,
		Payload: actionFields["payload"].AsInterface(),
	}
	return fields["state"].AsInterface(), action, nil
}

func encodeResponse(state any) (*structpb.Struct, error) {
	stateValue, err := structpb.NewValue(state)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{"state": stateValue}}, nil
}

func decodeResponse(msg *structpb.Struct) any {
	return msg.GetFields()["state"].AsInterface()
}
