// Package grpc exposes a running simulator's Pause/Resume/AddShip/
// SetEndTime/GetShipState control surface over gRPC, the way the teacher's
// daemon exposed container control over a generated DaemonService. No
// .proto/pb.go toolchain is available in this build, so the service is
// registered by hand against a grpc.ServiceDesc and carried over the
// json subtype codec in codec.go rather than protobuf binary framing.
package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/application/simulator"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/resistance"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/ship"
)

const serviceName = "shipnetsim.control.v1.Control"

// --- wire messages -------------------------------------------------------

type PauseRequest struct{}
type PauseResponse struct{}

type ResumeRequest struct{}
type ResumeResponse struct{}

type SetEndTimeRequest struct {
	Seconds float64
}
type SetEndTimeResponse struct{}

type LatLon struct {
	LonDeg float64
	LatDeg float64
}

type AddShipRequest struct {
	ShipID      string
	Hull        resistance.HullForm
	MaxSpeedMPS float64
	PathPoints  []LatLon
}
type AddShipResponse struct{}

type GetShipStateRequest struct {
	ShipID string
}
type GetShipStateResponse struct {
	Found bool
	State shared.ReachedDestinationEvent
}

// --- server ---------------------------------------------------------------

// ControlServer implements the control surface against one running
// simulator. Only one simulation run is ever live per process, matching
// cmd/shipnetsim-sim's single-run lifecycle.
type ControlServer struct {
	sim *simulator.Simulator
}

// NewControlServer wraps sim for RPC dispatch.
func NewControlServer(sim *simulator.Simulator) *ControlServer {
	return &ControlServer{sim: sim}
}

func (s *ControlServer) Pause(ctx context.Context, req *PauseRequest) (*PauseResponse, error) {
	s.sim.PauseSimulation()
	return &PauseResponse{}, nil
}

func (s *ControlServer) Resume(ctx context.Context, req *ResumeRequest) (*ResumeResponse, error) {
	s.sim.ResumeSimulation()
	return &ResumeResponse{}, nil
}

func (s *ControlServer) SetEndTime(ctx context.Context, req *SetEndTimeRequest) (*SetEndTimeResponse, error) {
	s.sim.SetEndTime(req.Seconds)
	return &SetEndTimeResponse{}, nil
}

// AddShip builds a minimal ship from the hull descriptor and path and adds
// it mid-run. Propulsion and energy sources are not settable over this
// RPC yet (no wire format decided for propulsion.Propeller/energy.Source
// graphs), so an added ship sails with zero thrust until a full descriptor
// loader lands; see cmd/shipnetsim-sim's loadShips.
func (s *ControlServer) AddShip(ctx context.Context, req *AddShipRequest) (*AddShipResponse, error) {
	hull, _, err := resistance.NewHullForm(req.Hull)
	if err != nil {
		return nil, fmt.Errorf("invalid hull descriptor: %w", err)
	}

	sh := ship.New(req.ShipID, hull)
	sh.MaxSpeedMPS = req.MaxSpeedMPS

	points := make([]geo.GPoint, len(req.PathPoints))
	lines := make([]geo.GLine, 0, len(req.PathPoints))
	for i, p := range req.PathPoints {
		points[i] = geo.NewGPoint(p.LonDeg, p.LatDeg)
		if i > 0 {
			lines = append(lines, geo.NewGLine(points[i-1], points[i]))
		}
	}
	sh.Load(points, lines)

	s.sim.AddShipToSimulation(sh)
	return &AddShipResponse{}, nil
}

func (s *ControlServer) GetShipState(ctx context.Context, req *GetShipStateRequest) (*GetShipStateResponse, error) {
	state, found := s.sim.ShipState(req.ShipID)
	return &GetShipStateResponse{Found: found, State: state}, nil
}

// --- ServiceDesc registration (hand-written generated-code stand-in) -----

func pauseHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PauseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(*ControlServer).Pause(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: serviceName + "/Pause"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(*ControlServer).Pause(ctx, req.(*PauseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func resumeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResumeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(*ControlServer).Resume(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: serviceName + "/Resume"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(*ControlServer).Resume(ctx, req.(*ResumeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func setEndTimeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetEndTimeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(*ControlServer).SetEndTime(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: serviceName + "/SetEndTime"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(*ControlServer).SetEndTime(ctx, req.(*SetEndTimeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func addShipHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddShipRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(*ControlServer).AddShip(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: serviceName + "/AddShip"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(*ControlServer).AddShip(ctx, req.(*AddShipRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getShipStateHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetShipStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(*ControlServer).GetShipState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: serviceName + "/GetShipState"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(*ControlServer).GetShipState(ctx, req.(*GetShipStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ControlServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Pause", Handler: pauseHandler},
		{MethodName: "Resume", Handler: resumeHandler},
		{MethodName: "SetEndTime", Handler: setEndTimeHandler},
		{MethodName: "AddShip", Handler: addShipHandler},
		{MethodName: "GetShipState", Handler: getShipStateHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/adapters/grpc/control.go",
}

// RegisterControlServer registers srv against s, in the same style as
// generated pb.RegisterXServer functions.
func RegisterControlServer(s grpc.ServiceRegistrar, srv *ControlServer) {
	s.RegisterService(&serviceDesc, srv)
}

// --- client -----------------------------------------------------------

// ControlClient is a thin hand-written stand-in for a generated gRPC
// client stub, calling the same json-coded methods the server registers.
type ControlClient struct {
	conn *grpc.ClientConn
}

// DialControl connects to a control surface listening at addr (host:port).
func DialControl(addr string) (*ControlClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to dial control surface at %s: %w", addr, err)
	}
	return &ControlClient{conn: conn}, nil
}

func (c *ControlClient) Close() error { return c.conn.Close() }

func (c *ControlClient) Pause(ctx context.Context) error {
	return c.conn.Invoke(ctx, "/"+serviceName+"/Pause", &PauseRequest{}, &PauseResponse{}, grpc.CallContentSubtype("json"))
}

func (c *ControlClient) Resume(ctx context.Context) error {
	return c.conn.Invoke(ctx, "/"+serviceName+"/Resume", &ResumeRequest{}, &ResumeResponse{}, grpc.CallContentSubtype("json"))
}

func (c *ControlClient) SetEndTime(ctx context.Context, seconds float64) error {
	return c.conn.Invoke(ctx, "/"+serviceName+"/SetEndTime", &SetEndTimeRequest{Seconds: seconds}, &SetEndTimeResponse{}, grpc.CallContentSubtype("json"))
}

func (c *ControlClient) AddShip(ctx context.Context, req *AddShipRequest) error {
	return c.conn.Invoke(ctx, "/"+serviceName+"/AddShip", req, &AddShipResponse{}, grpc.CallContentSubtype("json"))
}

func (c *ControlClient) GetShipState(ctx context.Context, shipID string) (*GetShipStateResponse, error) {
	resp := &GetShipStateResponse{}
	err := c.conn.Invoke(ctx, "/"+serviceName+"/GetShipState", &GetShipStateRequest{ShipID: shipID}, resp, grpc.CallContentSubtype("json"))
	return resp, err
}
