package parser

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/trucklink/orderfile/internal/model"
)

func (r *Result) warn(field, message string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Level: DiagnosticWarning, Field: field, Message: message})
}

func (r *Result) info(field, message string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Level: DiagnosticInfo, Field: field, Message: message})
}

func (d *Dispatcher) extract(ctx context.Context, spec *carrierSpec, doc Document) (*Result, error) {
	res := &Result{Format: spec.format}

	trip := firstMatch(spec.patterns.trip, doc.Text)
	if trip == "" {
		if spec.tripRequired {
			return nil, ErrNoTripReference
		}
		trip = "0"
		res.warn("tripReference", "no trip reference found, substituting 0")
	}

	var blocks []Block
	if spec.multiContainer {
		blocks = SplitContainers(doc.Text)
		if len(blocks) == 0 {
			res.warn("container", "no container numbers found in multi-container document")
			d.log.Warn().Str("format", string(spec.format)).Msg("no containers found")
			return res, nil
		}
		res.info("container", strconv.Itoa(len(blocks))+" container blocks found")
	} else {
		blocks = []Block{{ContainerNumber: ContainerNumber(doc.Text), Text: doc.Text}}
	}

	for _, block := range blocks {
		order, diags, err := d.extractContainer(ctx, spec, trip, block)
		res.Diagnostics = append(res.Diagnostics, diags...)
		if err != nil {
			res.Failures = append(res.Failures, ContainerFailure{
				ContainerNumber: block.ContainerNumber,
				Reason:          err.Error(),
			})
			d.log.Warn().Err(err).
				Str("format", string(spec.format)).
				Str("container", block.ContainerNumber).
				Msg("container extraction failed")
			continue
		}
		res.Orders = append(res.Orders, *order)
	}
	return res, nil
}

// extractContainer fills one order from one container block. Field searches
// are independent: a pattern that does not match applies its default and never
// blocks the remaining fields. Reference lookups run concurrently and are
// merged after all of them settle.
func (d *Dispatcher) extractContainer(ctx context.Context, spec *carrierSpec, trip string, block Block) (*model.Order, []Diagnostic, error) {
	var diags []Diagnostic
	warn := func(field, message string) {
		diags = append(diags, Diagnostic{Level: DiagnosticWarning, Field: field, Message: message})
	}

	text := block.Text
	p := spec.patterns

	order := &model.Order{
		TripReference: trip,
		OrderingParty: d.orderParty,
	}
	if order.OrderingParty.Name == "" {
		warn("orderingParty", "no ordering party configured")
	}

	order.Container.Number = block.ContainerNumber
	if order.Container.Number == "" {
		warn("containerNumber", "no container number found")
	}

	order.VesselName = firstMatch(p.vessel, text)
	if order.VesselName == "" {
		warn("vessel", "no vessel name found")
	}

	rawCarrier := firstMatch(p.carrier, text)
	rawType := firstMatch(p.typeLabel, text)
	rawPickup := firstMatch(p.pickup, text)
	rawDropoff := firstMatch(p.dropoff, text)
	rawCustomer := firstMatch(p.customer, text)

	order.Container.SealNumber = firstMatch(p.seal, text)
	order.Container.Cargo = firstMatch(p.cargo, text)
	order.Container.GrossWeight = NormalizeWeight(firstMatch(p.gross, text))
	order.Container.TareWeight = NormalizeWeight(firstMatch(p.tare, text))
	order.Container.VolumeCBM = NormalizeWeight(firstMatch(p.volume, text))
	order.Container.Colli = firstMatch(p.colli, text)
	if order.Container.Colli == "" {
		order.Container.Colli = "0"
	}
	order.Container.Temperature = firstMatch(p.temperature, text)

	hazardous, unNumber := DetectHazard(Lines(text))
	order.Container.Hazardous = BoolString(hazardous)
	order.Container.UNNumber = unNumber

	rawDate := firstMatch(p.date, text)
	if date, ok := NormalizeDate(rawDate); ok {
		order.Date = date
	} else if spec.dateFallbackNow {
		order.Date = now().Format(dateLayout)
	} else if rawDate != "" {
		warn("date", "unparsable date: "+rawDate)
	}

	if p.timeWindow != nil {
		if m := p.timeWindow.FindStringSubmatch(text); m != nil {
			order.TimeFrom = m[1]
			order.TimeTo = m[2]
		}
	}

	order.LoadReference = firstMatch(p.loadRef, text)
	if order.LoadReference == "" {
		warn("loadReference", "no load reference found")
	}
	order.ReturnReference = firstMatch(p.returnRef, text)
	order.Documentation = firstMatch(p.docRef, text)

	refs := d.resolveReferences(ctx, rawPickup, rawDropoff, rawCarrier, rawType)
	if err := refs.fatal(); err != nil {
		return nil, diags, err
	}

	order.CarrierRaw = rawCarrier
	order.Carrier = rawCarrier
	if refs.carrierErr != nil {
		warn("carrier", "reference store unavailable, keeping raw carrier name")
	} else if !refs.carrier.IsZero() {
		order.Carrier = refs.carrier.Name
	} else if rawCarrier != "" {
		warn("carrier", "no carrier match for "+rawCarrier)
	}

	order.Container.TypeLabel = rawType
	if rawType == "" {
		warn("containerType", "no container type found")
	} else if refs.ctypeErr != nil {
		warn("containerType", "reference store unavailable, leaving type code blank")
	} else if refs.ctype.IsZero() {
		warn("containerType", "no container type match for "+rawType)
	} else {
		order.Container.TypeCode = refs.ctype.Code
	}

	if rawPickup != "" {
		if refs.pickupErr != nil {
			warn("pickupTerminal", "reference store unavailable, using raw terminal name")
		}
		order.Locations = append(order.Locations, terminalLocation(model.ActionPickup, refs.pickup, rawPickup))
	} else {
		warn("pickupTerminal", "no pickup terminal found")
	}

	if rawCustomer != "" {
		name, address, postcode, city, country := splitAddressLine(rawCustomer)
		order.Locations = append(order.Locations, model.Location{
			Action:   spec.customerAction,
			Name:     name,
			Address:  address,
			Postcode: postcode,
			City:     city,
			Country:  country,
			TimeFrom: order.TimeFrom,
			TimeTo:   order.TimeTo,
		})
	} else {
		warn("customer", "no customer address found")
	}

	if rawDropoff != "" {
		if refs.dropoffErr != nil {
			warn("dropoffTerminal", "reference store unavailable, using raw terminal name")
		}
		order.Locations = append(order.Locations, terminalLocation(model.ActionDropoff, refs.dropoff, rawDropoff))
	} else {
		warn("dropoffTerminal", "no drop-off terminal found")
	}

	if spec.post != nil {
		spec.post(order, text)
	}
	return order, diags, nil
}

// terminalLocation builds a stop from a resolved terminal entry, falling back
// to the raw key as display name when the store had no match.
func terminalLocation(action model.LocationAction, entry model.ReferenceEntry, rawKey string) model.Location {
	if entry.IsZero() {
		return model.Location{Action: action, Name: rawKey}
	}
	return model.Location{
		Action:    action,
		Name:      entry.Name,
		Address:   entry.Address,
		Postcode:  entry.Postcode,
		City:      entry.City,
		Country:   entry.Country,
		Prenotify: entry.Prenotify,
		TimeFrom:  entry.TimeFrom,
		TimeTo:    entry.TimeTo,
		Portbase:  entry.Portbase,
		BICS:      entry.BICS,
	}
}

type resolvedRefs struct {
	pickup, dropoff, carrier, ctype             model.ReferenceEntry
	pickupErr, dropoffErr, carrierErr, ctypeErr error
}

// fatal reports the first resolution failure that aborts this container.
// Store-unreachable errors are not fatal: they degrade to the raw-value
// fallback at the merge step.
func (r *resolvedRefs) fatal() error {
	for _, err := range []error{r.pickupErr, r.dropoffErr, r.carrierErr, r.ctypeErr} {
		if err != nil && !errors.Is(err, ErrStoreUnavailable) {
			return err
		}
	}
	return nil
}

// resolveReferences issues the independent reference lookups of one container
// concurrently and waits for all of them.
func (d *Dispatcher) resolveReferences(ctx context.Context, pickupKey, dropoffKey, carrierKey, typeKey string) resolvedRefs {
	var refs resolvedRefs
	var wg sync.WaitGroup

	lookup := func(kind model.ReferenceKind, key string, entry *model.ReferenceEntry, errOut *error) {
		if key == "" {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			*entry, *errOut = d.resolver.Resolve(ctx, kind, key)
		}()
	}

	lookup(model.ReferenceTerminal, pickupKey, &refs.pickup, &refs.pickupErr)
	lookup(model.ReferenceTerminal, dropoffKey, &refs.dropoff, &refs.dropoffErr)
	lookup(model.ReferenceCarrier, carrierKey, &refs.carrier, &refs.carrierErr)
	lookup(model.ReferenceContainerType, typeKey, &refs.ctype, &refs.ctypeErr)
	wg.Wait()

	return refs
}
