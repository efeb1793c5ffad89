package catalog

import "github.com/mdrakibulhaquesardar/flx-cli/pkg/config"

var blocBody = mustParse("bloc", `import 'package:flutter_bloc/flutter_bloc.dart';

import '../../domain/entities/{{.Snake}}_entity.dart';
import '../../domain/usecases/get_{{.Snake}}_usecase.dart';

part '{{.Snake}}_event.dart';
part '{{.Snake}}_state.dart';

class {{.Pascal}}Bloc extends Bloc<{{.Pascal}}Event, {{.Pascal}}State> {
  {{.Pascal}}Bloc({required this.get{{.Pascal}}Usecase}) : super(const {{.Pascal}}Initial()) {
    on<{{.Pascal}}Requested>(_on{{.Pascal}}Requested);
  }

  final Get{{.Pascal}}Usecase get{{.Pascal}}Usecase;

  Future<void> _on{{.Pascal}}Requested(
    {{.Pascal}}Requested event,
    Emitter<{{.Pascal}}State> emit,
  ) async {
    emit(const {{.Pascal}}Loading());
    try {
      final {{.Camel}} = await get{{.Pascal}}Usecase(event.id);
      emit({{.Pascal}}Loaded({{.Camel}}));
    } catch (e) {
      emit({{.Pascal}}Error(e.toString()));
    }
  }
}
`)

var blocEvent = mustParse("bloc_event", `part of '{{.Snake}}_bloc.dart';

abstract class {{.Pascal}}Event {
  const {{.Pascal}}Event();
}

class {{.Pascal}}Requested extends {{.Pascal}}Event {
  const {{.Pascal}}Requested(this.id);

  final String id;
}
`)

var blocState = mustParse("bloc_state", `part of '{{.Snake}}_bloc.dart';

abstract class {{.Pascal}}State {
  const {{.Pascal}}State();
}

class {{.Pascal}}Initial extends {{.Pascal}}State {
  const {{.Pascal}}Initial();
}

class {{.Pascal}}Loading extends {{.Pascal}}State {
  const {{.Pascal}}Loading();
}

class {{.Pascal}}Loaded extends {{.Pascal}}State {
  const {{.Pascal}}Loaded(this.{{.Camel}});

  final {{.Pascal}}Entity {{.Camel}};
}

class {{.Pascal}}Error extends {{.Pascal}}State {
  const {{.Pascal}}Error(this.message);

  final String message;
}
`)

var blocPage = mustParse("bloc_page", `import 'package:flutter/material.dart';
import 'package:flutter_bloc/flutter_bloc.dart';

import '../bloc/{{.Snake}}_bloc.dart';

/// {{.Pascal}} page, scaffolded by {{.Author}}.
class {{.Pascal}}Page extends StatelessWidget {
  const {{.Pascal}}Page({super.key});

  @override
  Widget build(BuildContext context) {
    return Scaffold(
      appBar: AppBar(title: const Text('{{.Pascal}}')),
      body: BlocBuilder<{{.Pascal}}Bloc, {{.Pascal}}State>(
        builder: (context, state) {
          if (state is {{.Pascal}}Loading) {
            return const Center(child: CircularProgressIndicator());
          }
          if (state is {{.Pascal}}Error) {
            return Center(child: Text(state.message));
          }
          return const Center(child: Text('{{.Pascal}}'));
        },
      ),
    );
  }
}
`)

var blocBinding = mustParse("bloc_binding", `import 'package:flutter/widgets.dart';
import 'package:flutter_bloc/flutter_bloc.dart';

import '../../data/datasources/{{.Snake}}_remote_data_source.dart';
import '../../data/repositories/{{.Snake}}_repository_impl.dart';
import '../../domain/usecases/get_{{.Snake}}_usecase.dart';
import '../bloc/{{.Snake}}_bloc.dart';

class {{.Pascal}}Binding extends StatelessWidget {
  const {{.Pascal}}Binding({super.key, required this.child});

  final Widget child;

  @override
  Widget build(BuildContext context) {
    return BlocProvider<{{.Pascal}}Bloc>(
      create: (_) => {{.Pascal}}Bloc(
        get{{.Pascal}}Usecase: Get{{.Pascal}}Usecase(
          repository: {{.Pascal}}RepositoryImpl(
            remoteDataSource: {{.Pascal}}RemoteDataSourceImpl(client: null),
          ),
        ),
      ),
      child: child,
    );
  }
}
`)

// Bloc renders the event-driven handler mapping input events to emitted
// states.
func Bloc(name string, cfg config.Config) string {
	return render(blocBody, newCtx(name, cfg))
}

// BlocEvent renders the event set as a part file of the bloc.
func BlocEvent(name string, cfg config.Config) string {
	return render(blocEvent, newCtx(name, cfg))
}

// BlocState renders the state set as a part file of the bloc.
func BlocState(name string, cfg config.Config) string {
	return render(blocState, newCtx(name, cfg))
}
