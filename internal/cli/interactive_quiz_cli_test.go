package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_cli "github.com/vokabulatr/vokabulatr/internal/mocks/cli"
)

func TestInteractiveQuizCLI_Run(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*mock_cli.MockSession)
		cancelAfter time.Duration
		wantErr     bool
		wantStdout  string
	}{
		{
			name: "Session returns error",
			setupMock: func(mockSession *mock_cli.MockSession) {
				mockSession.EXPECT().
					Session(gomock.Any()).
					Return(errors.New("mock session error")).
					Times(1)
			},
			wantErr: true,
		},
		{
			name: "Session ends after a few turns",
			setupMock: func(mockSession *mock_cli.MockSession) {
				gomock.InOrder(
					mockSession.EXPECT().Session(gomock.Any()).Return(nil).Times(2),
					mockSession.EXPECT().Session(gomock.Any()).Return(errEnd).Times(1),
				)
			},
			wantErr: false,
		},
		{
			name: "Context cancelled before first session",
			setupMock: func(mockSession *mock_cli.MockSession) {
				// May or may not be called depending on timing
				mockSession.EXPECT().
					Session(gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			cancelAfter: 1 * time.Millisecond,
			wantErr:     false,
		},
		{
			name: "Context cancelled while waiting for input",
			setupMock: func(mockSession *mock_cli.MockSession) {
				mockSession.EXPECT().
					Session(gomock.Any()).
					DoAndReturn(func(ctx context.Context) error {
						<-ctx.Done()
						return nil
					}).
					Times(1)
			},
			cancelAfter: 10 * time.Millisecond,
			wantErr:     false,
			wantStdout:  "Received interrupt signal, exiting...\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSession := mock_cli.NewMockSession(ctrl)
			tt.setupMock(mockSession)

			var stdout bytes.Buffer
			cli := newInteractiveQuizCLI(strings.NewReader(""), &stdout)

			ctx := context.Background()
			if tt.cancelAfter > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, tt.cancelAfter)
				defer cancel()
			}

			err := cli.Run(ctx, mockSession)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantStdout != "" {
				assert.Equal(t, tt.wantStdout, stdout.String())
			}
		})
	}

	t.Run("ContextPropagation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		receivedContext := make(chan context.Context, 1)

		mockSession := mock_cli.NewMockSession(ctrl)
		mockSession.EXPECT().
			Session(gomock.Any()).
			DoAndReturn(func(ctx context.Context) error {
				select {
				case receivedContext <- ctx:
				default:
				}
				return errors.New("test error")
			}).
			Times(1)

		cli := newInteractiveQuizCLI(strings.NewReader(""), &bytes.Buffer{})

		_ = cli.Run(context.Background(), mockSession)

		select {
		case ctx := <-receivedContext:
			assert.NotNil(t, ctx)
		case <-time.After(1 * time.Second):
			t.Fatal("Context was not passed to session")
		}
	})
}

func TestInteractiveQuizCLI_readLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "lines with unix and windows endings",
			input: "eins\nzwei\r\n",
			want:  []string{"eins", "zwei"},
		},
		{
			name:  "last line without newline",
			input: "eins\nzwei",
			want:  []string{"eins", "zwei"},
		},
		{
			name:  "blank line",
			input: "\n",
			want:  []string{""},
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := newInteractiveQuizCLI(strings.NewReader(tt.input), &bytes.Buffer{})

			var got []string
			for {
				line, ok, err := cli.readLine()
				require.NoError(t, err)
				if !ok {
					break
				}
				got = append(got, line)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
